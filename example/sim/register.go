package main

// registerAll populates the default registry with every trait, object type,
// and implementation the sim uses. Traits must be registered before the
// implementations that reference them, so this runs as a single bootstrap
// rather than scattered init functions.
func registerAll() {
	registerTraits()
	registerGrass()
	registerHungers()
	registerMover()
	registerRabbit()
	registerWolf()
	registerSkeleton()
}
