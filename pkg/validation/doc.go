// Package validation implements the §8 "Universal invariants" as
// independent checker functions, grounded on the teacher's
// validation.DefaultValidator / CheckXxx pattern.
package validation
