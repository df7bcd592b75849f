// Package locker implements lease-based named locks on top of a shared
// database table. Every service instance competes for a row per lock name;
// the instance that wins the upsert owns the lease until lock_until passes.
// The scheme survives holder crashes because a lease expires on its own.
package locker

import (
	"context"
	"os"
	"time"

	"orders/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LockDTO represents one named lock row. The name is the primary key, so
// concurrent acquirers conflict on insert and fall into the guarded update.
type LockDTO struct {
	Name      string    `gorm:"primaryKey;type:varchar(64)"`
	LockUntil time.Time ``
	LockedAt  time.Time ``
	LockedBy  string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for lock rows.
func (LockDTO) TableName() string {
	return "shedlock"
}

// GormLockProvider implements LockProvider with a single upsert per acquire
// attempt. lockAtMostFor bounds how long a crashed holder can block others;
// lockAtLeastFor keeps the lock held briefly after release so instances with
// skewed clocks do not run the same job twice in one scheduling window.
type GormLockProvider struct {
	db             *gorm.DB
	lockAtMostFor  time.Duration
	lockAtLeastFor time.Duration
	owner          string
}

// NewGormLockProvider creates a lock provider backed by the shedlock table.
func NewGormLockProvider(db *gorm.DB, lockAtMostFor, lockAtLeastFor time.Duration) *GormLockProvider {
	owner, err := os.Hostname()
	if err != nil || owner == "" {
		owner = uuid.NewString()
	}

	return &GormLockProvider{
		db:             db,
		lockAtMostFor:  lockAtMostFor,
		lockAtLeastFor: lockAtLeastFor,
		owner:          owner,
	}
}

// Acquire attempts to take the named lock. The insert wins when no row
// exists; otherwise the conflict update wins only if the current lease has
// expired. Zero affected rows means another instance holds a live lease.
func (p *GormLockProvider) Acquire(ctx context.Context, name string) (ports.Lock, error) {
	now := time.Now().UTC()
	until := now.Add(p.lockAtMostFor)

	result := p.db.WithContext(ctx).Exec(
		`INSERT INTO shedlock (name, lock_until, locked_at, locked_by)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (name) DO UPDATE
		 SET lock_until = EXCLUDED.lock_until,
		     locked_at = EXCLUDED.locked_at,
		     locked_by = EXCLUDED.locked_by
		 WHERE shedlock.lock_until <= ?`,
		name, until, now, p.owner, now,
	)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrLockAlreadyHeld
	}

	return &gormLock{
		provider: p,
		name:     name,
		lockedAt: now,
	}, nil
}

// gormLock is a held lease on one lock name.
type gormLock struct {
	provider *GormLockProvider
	name     string
	lockedAt time.Time
}

// Release shortens the lease so the next acquirer does not wait out the full
// lockAtMostFor window. The lease still runs until lockAtLeastFor has passed
// since acquisition. Only the owning instance's row is touched.
func (l *gormLock) Release(ctx context.Context) error {
	until := time.Now().UTC()
	if earliest := l.lockedAt.Add(l.provider.lockAtLeastFor); until.Before(earliest) {
		until = earliest
	}

	return l.provider.db.WithContext(ctx).
		Model(&LockDTO{}).
		Where("name = ? AND locked_by = ?", l.name, l.provider.owner).
		Update("lock_until", until).Error
}
