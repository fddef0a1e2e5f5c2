package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gameroom_active_connections",
		Help: "Number of currently open client connections.",
	})

	ActiveRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gameroom_active_rooms",
		Help: "Number of rooms held by the room store.",
	})

	MovesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gameroom_moves_total",
		Help: "Number of successfully applied moves.",
	})

	GamesFinishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gameroom_games_finished_total",
		Help: "Number of games reaching a terminal verdict, by result.",
	}, []string{"result"})
)
