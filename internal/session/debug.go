package session

import (
	"fmt"
	"strings"
)

// DebugOp names a debug panel action.
type DebugOp string

const (
	DebugClearRecord   DebugOp = "clear-record"
	DebugForceWin      DebugOp = "force-win"
	DebugResetWins     DebugOp = "reset-wins"
	DebugResetBalance  DebugOp = "reset-balance"
	DebugResetTickles  DebugOp = "reset-tickles"
	DebugAddBalance    DebugOp = "add-balance"
	DebugClearUpgrades DebugOp = "clear-upgrades"
)

// DebugOps lists every debug action in panel order.
var DebugOps = []DebugOp{
	DebugClearRecord,
	DebugForceWin,
	DebugResetWins,
	DebugResetBalance,
	DebugResetTickles,
	DebugAddBalance,
	DebugClearUpgrades,
}

// DebugGrant is the balance added by DebugAddBalance.
const DebugGrant = 1000

// ParseDebugOp validates a debug action name.
func ParseDebugOp(name string) (DebugOp, error) {
	op := DebugOp(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range DebugOps {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown debug op %q", name)
}

// Debug runs a debug action.
func (m *Machine) Debug(op DebugOp) {
	m.log.Debug("debug op", "player", m.player, "op", op)
	switch op {
	case DebugClearRecord:
		m.store().ResetBestScore()
	case DebugForceWin:
		m.forceWin()
		return
	case DebugResetWins:
		m.store().ResetWins()
	case DebugResetBalance:
		m.store().ResetBalance()
	case DebugResetTickles:
		m.store().ResetTickles()
	case DebugAddBalance:
		m.economy.Earn(DebugGrant)
	case DebugClearUpgrades:
		m.store().ClearUpgrades()
		if m.state == StateIdle {
			m.sim.Reset(m.store().BallCount())
		}
	default:
		return
	}
	m.render()
}

// forceWin clears the grid and ends the run as won. Finished runs are
// left alone.
func (m *Machine) forceWin() {
	if m.state.Over() {
		return
	}
	m.sim.ForceClear()
	m.finish(StateWon)
}
