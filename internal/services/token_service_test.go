package services

import (
	"context"
	"testing"
	"time"

	"finhealth/internal/models"
	"finhealth/internal/testutil"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()

	t.Run("revoke_then_check", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTokenService(db)
		user := testutil.CreateTestUser(t, db)

		revoked, err := svc.IsRevoked(ctx, "jti-1")
		testutil.AssertNoError(t, err)
		if revoked {
			t.Fatal("fresh token reported revoked")
		}

		testutil.AssertNoError(t, svc.Revoke(ctx, user.ID, "jti-1", time.Now().Add(time.Hour)))
		// A second logout with the same token is harmless.
		testutil.AssertNoError(t, svc.Revoke(ctx, user.ID, "jti-1", time.Now().Add(time.Hour)))

		revoked, err = svc.IsRevoked(ctx, "jti-1")
		testutil.AssertNoError(t, err)
		if !revoked {
			t.Error("expected token to be revoked")
		}
	})

	t.Run("empty_jti", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTokenService(db)
		err := svc.Revoke(ctx, "u", "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("purge_expired", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewTokenService(db).(*tokenService)
		user := testutil.CreateTestUser(t, db)
		now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return now }

		testutil.AssertNoError(t, svc.Revoke(ctx, user.ID, "old", now.Add(-time.Minute)))
		testutil.AssertNoError(t, svc.Revoke(ctx, user.ID, "live", now.Add(time.Minute)))

		n, err := svc.PurgeExpired(ctx)
		testutil.AssertNoError(t, err)
		if n != 1 {
			t.Errorf("purged = %d, want 1", n)
		}

		var left []models.RevokedToken
		db.Find(&left)
		if len(left) != 1 || left[0].JTI != "live" {
			t.Errorf("remaining = %+v, want only the live token", left)
		}
	})
}
