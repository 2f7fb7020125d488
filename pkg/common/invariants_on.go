//go:build kinderdebug

package common

// Built with -tags kinderdebug every MakeMove and UnmakeMove validates the position.
const invariantChecks = true
