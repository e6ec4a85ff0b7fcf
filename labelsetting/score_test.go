package labelsetting_test

// score.go is unexported; its behaviour is exercised indirectly through
// Solver.Solve in driver_test.go (the best-labels cache ordering would
// misbehave if scoreLabel were wrong, so a correct Solve result is itself
// evidence scoreLabel holds).
