//go:build !kinderdebug

package common

const invariantChecks = false
