// Package harness binds the artifact phase to a godog suite.
//
// Register installs two scenario hooks. The before hook opens the
// per-scenario log file under the results directory and stores the
// logger in the scenario context; step code reaches it with
// LoggerFrom. The after hook closes that logger, derives the
// scenario status from the step error, runs an artifact.Manager and
// attaches the results to the godog report. Step definitions that
// drive a browser register it with WithPage.
//
// Artifact problems are logged and never change the scenario result.
package harness
