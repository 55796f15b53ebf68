// Package fleet loads and runs a vehicle demo plan.
//
// A plan is an HCL document made of factory blocks, each labelled with a
// region key and holding car and motorcycle blocks in the order they should
// be built:
//
//	factory "us" {
//	  car {
//	    make  = "Ford"
//	    model = "Mustang"
//	  }
//	  motorcycle {
//	    make  = "Harley-Davidson"
//	    model = "Sportster"
//	  }
//	}
//
// Attribute expressions may use the string functions upper, lower, format,
// join and trimspace, and the variable region, which holds the enclosing
// factory's key. A directory is loaded as one plan from every .hcl file
// beneath it. Without a plan the embedded default.hcl is used.
package fleet
