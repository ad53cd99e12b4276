// Package config defines the single YAML document that parameterizes one
// engine run (§4.N), grounded on the teacher's dungeon.Config.
package config
