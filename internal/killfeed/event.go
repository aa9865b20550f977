package killfeed

import (
	"github.com/google/uuid"

	"github.com/udisondev/worldpvp/internal/model"
)

// KillEvent — один PvP kill, ожидающий выдачи наград.
type KillEvent struct {
	ID       uuid.UUID // для корреляции логов
	Attacker *model.Player
	Victim   *model.Player
	Group    *model.Group // attacker's group at kill time, nil if solo
}

// NewKillEvent creates an event with a fresh ID.
func NewKillEvent(attacker, victim *model.Player, group *model.Group) KillEvent {
	return KillEvent{
		ID:       uuid.New(),
		Attacker: attacker,
		Victim:   victim,
		Group:    group,
	}
}
