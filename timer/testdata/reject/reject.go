// Package reject is type-checked by the timer tests. They replace this file
// with programs the compiler has to refuse.
package reject

import (
	"nrftimer/sim"
	"nrftimer/timer"
)

func Use() {
	c := timer.NewBasic(sim.NewBasic()).IntoCounter()
	r := timer.Start(c)
	timer.Tick(r)
	_ = timer.Stop(r)
}
