// Package logger provides categorized loggers with independent severity
// filtering and an independent "fail on severity" policy.
//
// # Severities
//
// From most to least important: Error, Warn, Info, Verbose. None marks a
// message logged without a severity.
//
// # Usage
//
// Install configuration once at startup:
//
//	logger.Init(logger.Flags{"log": "WARN", "combat.log": "verbose"})
//
// Create a Logger per category and log through its per-severity children:
//
//	log := logger.MustNew("Combat")
//	log.Warn.Log("low health")
//	log.Info.Logf("hit for %d", 12)
//	log.Print("always shown while anything is enabled")
//
// A severity in the throw set never logs; the call returns a
// *ThresholdError carrying the formatted message instead:
//
//	if err := log.Error.Log("corrupt save"); err != nil {
//	    return err
//	}
//
// # Configuration
//
// Each Logger resolves its log and throw sets once, when built. For the log
// set, "<feature>.log" wins over "log", which wins over the WithPriority
// threshold; "throw" keys work the same way. The feature is the category up
// to any '[' lower-cased, so "Combat[boss]" reads "combat.log".
//
// Values are a single severity, expanded to it and everything more important
// ("WARN" is ERROR and WARN), an explicit list ("[info,error]"), or "NONE".
//
// Without Init, configuration comes from the environment:
//
//	LOGGER_LOG=WARN LOGGER_COMBAT_LOG=VERBOSE ./myapp
//
// Loggers are not safe for concurrent mutation. Configuration is read-only
// after Init and may be read from any goroutine.
package logger
