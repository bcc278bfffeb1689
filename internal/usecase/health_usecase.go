package usecase

import (
	"context"
	"time"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// Pinger is satisfied by optional backing services such as redis.
type Pinger func(ctx context.Context) error

type healthUsecase struct {
	relayConfigured bool
	redis           Pinger
}

func NewHealthUsecase(relayConfigured bool, redis Pinger) HealthUsecase {
	return &healthUsecase{relayConfigured: relayConfigured, redis: redis}
}

// Check always reports status ok; degraded dependencies are listed but do
// not take the site down.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	out := map[string]string{
		"status": "ok",
		"relay":  "configured",
		"redis":  "disabled",
	}
	if !u.relayConfigured {
		out["relay"] = "not_configured"
	}
	if u.redis != nil {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if err := u.redis(ctx); err != nil {
			out["redis"] = "unavailable"
		} else {
			out["redis"] = "ok"
		}
	}
	return out
}
