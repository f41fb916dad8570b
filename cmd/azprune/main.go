// Azprune - Azure orphaned resource scanner.
// Find what you forgot to delete before the invoice does.
package main

func main() {
	Execute()
}
