package scenario

import (
	"os"
	"strings"
	"testing"
	"time"

	"finhealth/internal/engine"
	"finhealth/internal/models"
	"finhealth/internal/testutil"
)

const minimal = `
[profile]
salary = 40000
rent = 12000
`

func TestDecode_ExampleScenario(t *testing.T) {
	f, err := os.Open("../../examples/scenario.toml")
	if err != nil {
		t.Fatalf("open example: %v", err)
	}
	defer f.Close()

	sc, err := Decode(f, time.Time{})
	testutil.AssertNoError(t, err)

	if y, m, d := sc.Now.Date(); y != 2026 || m != time.October || d != 14 {
		t.Errorf("now = %v, want the file's 2026-10-14", sc.Now)
	}
	in := sc.Input
	if len(in.Expenses) != 1 || len(in.Assets) != 1 || len(in.Liabilities) != 1 || len(in.Goals) != 1 {
		t.Fatalf("unexpected record counts %+v", in)
	}
	if in.Liabilities[0].Type != models.LiabilityTypeCreditCard || in.Liabilities[0].InterestRate != 24 {
		t.Errorf("liability = %+v", in.Liabilities[0])
	}
	if !in.Goals[0].TargetDate.Equal(time.Date(2027, 10, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("goal target = %v, want 2027-10-14", in.Goals[0].TargetDate)
	}

	snap, err := engine.New(engine.DefaultPolicy()).Compute(in, sc.Now)
	testutil.AssertNoError(t, err)
	testutil.AssertAmount(t, "monthly burn", snap.MonthlyBurn, 15000)
	testutil.AssertAmount(t, "surplus", snap.Surplus, 35000)
	if g := snap.AnalyzedGoals[0]; g.RequiredMonthly != 5000 || g.Status != models.GoalStatusOnTrack {
		t.Errorf("goal = %+v, want On Track at 5000", g)
	}
	if snap.DebtStrategy.MonthsToFreedom != 1 {
		t.Errorf("months to freedom = %d, want 1", snap.DebtStrategy.MonthsToFreedom)
	}
}

func TestDecode_Now(t *testing.T) {
	override := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)

	sc, err := Decode(strings.NewReader("now = 2026-10-14\n"+minimal), override)
	testutil.AssertNoError(t, err)
	if !sc.Now.Equal(override) {
		t.Errorf("now = %v, want the override", sc.Now)
	}

	before := time.Now()
	sc, err = Decode(strings.NewReader(minimal), time.Time{})
	testutil.AssertNoError(t, err)
	if sc.Now.Before(before) {
		t.Errorf("now = %v, want the current time", sc.Now)
	}
}

func TestDecode_Defaults(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	sc, err := Decode(strings.NewReader(minimal+`
[[expenses]]
amount = 300

[[goals]]
target_amount = 1000
target_date = 2027-01-31

[[goals]]
target_amount = 1000
months_remaining = 3
`), now)
	testutil.AssertNoError(t, err)

	e := sc.Input.Expenses[0]
	if e.ID == "" || !e.Date.Equal(time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expense = %+v, want an id and today's date", e)
	}
	if got := sc.Input.Goals[1].TargetDate; !got.Equal(time.Date(2027, 1, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("months_remaining target = %v, want 2027-01-14", got)
	}
	if sc.Input.Profile.Salary != 40000 {
		t.Errorf("salary = %v", sc.Input.Profile.Salary)
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"malformed", "[profile\nsalary = 1", "malformed"},
		{"missing_salary", "[profile]\nrent = 1\n", `"salary"`},
		{"missing_rent", "[profile]\nsalary = 1\n", `"rent"`},
		{"unknown_key", minimal + "bonus = 5\n", "unknown keys"},
		{"expense_amount", minimal + "[[expenses]]\ntitle = \"x\"\n", "expenses[0]"},
		{"asset_value", minimal + "[[assets]]\ntype = \"Gold\"\n", `"value"`},
		{"liability_rate", minimal + "[[liabilities]]\ntype = \"EMI\"\noutstanding_amount = 5\n", `"interest_rate"`},
		{"goal_date", minimal + "[[goals]]\ntarget_amount = 5\n", `"target_date"`},
		{"goal_both_dates", minimal + "[[goals]]\ntarget_amount = 5\nmonths_remaining = 3\ntarget_date = 2027-01-01\n", "not both"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.toml), time.Time{})
			testutil.AssertAppError(t, err, "INVALID_INPUT")
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}
