package interfaces

import (
	"maps"
	"sync"
)

// MemoryPersistence keeps save data in process. It is safe for concurrent use.
type MemoryPersistence struct {
	mu        sync.Mutex
	coins     float64
	bonuses   map[string]float64
	kills     map[string]int
	bossKills map[string]int
	unlocked  map[string]bool
	lastRun   RunStats
	totalRuns int
	bestTime  float64
}

func NewMemoryPersistence(bonuses map[string]float64) *MemoryPersistence {
	m := &MemoryPersistence{
		bonuses:   make(map[string]float64),
		kills:     make(map[string]int),
		bossKills: make(map[string]int),
		unlocked:  make(map[string]bool),
	}
	maps.Copy(m.bonuses, bonuses)
	return m
}

func (m *MemoryPersistence) Coins() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.coins
}

func (m *MemoryPersistence) AddCoins(n float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coins += n
}

// SpendCoins deducts n and reports false, leaving the balance untouched, when
// there are not enough coins.
func (m *MemoryPersistence) SpendCoins(n float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > m.coins {
		return false
	}
	m.coins -= n
	return true
}

func (m *MemoryPersistence) PowerupBonuses() map[string]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.bonuses)
}

func (m *MemoryPersistence) RecordKill(defID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kills[defID]++
}

func (m *MemoryPersistence) RecordBossKill(defID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bossKills[defID]++
}

func (m *MemoryPersistence) Kills(defID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kills[defID]
}

func (m *MemoryPersistence) BossKills(defID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bossKills[defID]
}

func (m *MemoryPersistence) UpdateStats(stats RunStats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastRun = stats
	m.totalRuns++
	if stats.TimeSurvived > m.bestTime {
		m.bestTime = stats.TimeSurvived
	}
}

// LastRun returns the stats of the most recent run and the number of runs recorded.
func (m *MemoryPersistence) LastRun() (RunStats, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRun, m.totalRuns
}

func (m *MemoryPersistence) IsCharacterUnlocked(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unlocked[id]
}

func (m *MemoryPersistence) UnlockCharacter(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unlocked[id] = true
}

// BestTime is the longest run recorded, in seconds.
func (m *MemoryPersistence) BestTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bestTime
}
