// Command finctl runs schema migrations and offline health simulations.
package main

func main() {
	Execute()
}
