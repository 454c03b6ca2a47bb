package system

import (
	"go-stage-shooter/internal/component"
	"go-stage-shooter/internal/interfaces"
)

// damagePlayer asks the host to take damage off HP, never below zero.
func damagePlayer(state interfaces.StateAccess, damage int) {
	state.Mutate(func(d *interfaces.PlayerState) {
		d.HP -= damage
		if d.HP < 0 {
			d.HP = 0
		}
	})
}

func grantExp(state interfaces.StateAccess, amount int) {
	state.Mutate(func(d *interfaces.PlayerState) {
		d.Exp += amount
	})
}

// place reports a centred visual to the host as a top-left rectangle.
func place(r interfaces.Renderer, h component.Handle, cx, cy, w, hgt float64) {
	if h == 0 {
		return
	}
	r.Place(h, component.CenterRect(cx, cy, w, hgt))
}
