// Package vehicle defines the Vehicle abstraction, its two variants (Car and
// Motorcycle) and the region factories that build them.
//
// A Factory attaches a fixed region label to every vehicle it produces, so a
// call site that holds a Factory never branches on region itself: swapping
// the US factory for the EU one swaps the label on everything it creates.
package vehicle
