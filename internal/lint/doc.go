// Package lint is the rule framework: rule contracts, the class schema a
// rule may consult, a registry of named rules and Run, which forwards rule
// findings into a diag.Reporter.
//
// A rule sees one parsed file at a time and never fails: whatever it cannot
// interpret it skips.
package lint
