// Package themes loads the depth-indexed weighted tables that drive
// secondary cell randomization and wave-spawn variant selection (§4.M).
package themes
