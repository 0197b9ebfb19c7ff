// Helper object that tracks hunger for any animal component.
package main

import (
	"fmt"

	"github.com/cogworks/cogs"
)

type Hungers struct {
	hunger    int // [0, maxHunger]
	maxHunger int
}

func (Hungers) Name() string {
	return "hungers"
}

func registerHungers() {
	cogs.MustRegisterObjectType[Hungers]()
	cogs.MustRegisterImpl[Hunger, Hungers]()
	cogs.MustRegisterImpl[Inspectable, Hungers]()
}

func NewHungers(initial, max int) *Hungers {
	return &Hungers{hunger: initial, maxHunger: max}
}

func (h *Hungers) Get() int {
	return h.hunger
}

func (h *Hungers) Set(value int) {
	if value < 0 || value > h.maxHunger {
		panic(fmt.Sprintf("hunger %d is outside [0, %d]", value, h.maxHunger))
	}
	h.hunger = value
}

func (h *Hungers) Adjust(delta int) {
	h.hunger += delta
	if h.hunger < 0 {
		h.hunger = 0
	}
	if h.hunger > h.maxHunger {
		h.hunger = h.maxHunger
	}
}

func (h *Hungers) Inspect() string {
	return fmt.Sprintf("hunger %d of %d", h.hunger, h.maxHunger)
}
