package healthscore

import (
	"time"

	"Planzee/internal/pkg"
)

type Clock interface {
	Today() time.Time
}

// SystemClock devolve a data corrente no fuso configurado.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Today() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return pkg.CivilDate(time.Now().In(loc))
}

type FixedClock time.Time

func (c FixedClock) Today() time.Time {
	return pkg.CivilDate(time.Time(c))
}
