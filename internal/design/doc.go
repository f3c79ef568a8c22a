// Package design defines what a printable design module is: a parameter
// schema prototype, an entry function that turns parameters into one or
// more Results, and the contract binding the two.
//
// Design packages register themselves from init:
//
//	func init() {
//		design.Register(design.Module{
//			Name:   "ring",
//			Doc:    "A plain ring.",
//			Params: &Params{OuterR: 3 * units.CM, Thickness: 2.7, Height: 2.5},
//			Main:   Main,
//		})
//	}
//
// The command line looks modules up by name; Lookup validates the name and
// checks the contract before any flag is parsed.
package design
