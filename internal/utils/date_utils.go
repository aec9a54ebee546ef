package utils

import (
	"sync"
	"time"
)

var (
	brasilOnce     sync.Once
	brasilLocation *time.Location
)

// GetBrasilLocation retorna a localização de São Paulo, carregada uma única vez.
// Sem a base de fusos no sistema, usa UTC-3 fixo.
func GetBrasilLocation() *time.Location {
	brasilOnce.Do(func() {
		loc, err := time.LoadLocation("America/Sao_Paulo")
		if err != nil {
			loc = time.FixedZone("BRT", -3*60*60)
		}
		brasilLocation = loc
	})
	return brasilLocation
}
