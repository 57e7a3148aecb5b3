package postgres

import (
	"context"
	"database/sql"

	"orgbox/internal/domain/entity"
	"orgbox/internal/repository"
)

type AlarmRepo struct{ db repository.DB }

func NewAlarmRepo(db repository.DB) repository.AlarmRepository {
	return &AlarmRepo{db: db}
}

func (repo *AlarmRepo) Get(ctx context.Context, id int64) (*entity.Alarm, error) {
	const query = `
SELECT id, user_id, alarm_name, time, created_at, updated_at
FROM alarms
WHERE id = $1
LIMIT 1`
	var alarm entity.Alarm
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&alarm.ID, &alarm.UserID, &alarm.AlarmName,
		&alarm.Time, &alarm.CreatedAt, &alarm.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("Get", err)
	}
	return &alarm, nil
}

func (repo *AlarmRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.Alarm, error) {
	const query = `
SELECT id, user_id, alarm_name, time, created_at, updated_at
FROM alarms
WHERE user_id = $1
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("ListByUser", err)
	}
	defer func() { _ = rows.Close() }()

	alarms := make([]*entity.Alarm, 0, 16)
	for rows.Next() {
		var alarm entity.Alarm
		if err := rows.Scan(&alarm.ID, &alarm.UserID, &alarm.AlarmName,
			&alarm.Time, &alarm.CreatedAt, &alarm.UpdatedAt); err != nil {
			return nil, wrapErr("ListByUser: Scan", err)
		}
		alarms = append(alarms, &alarm)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("ListByUser: rows.Err", err)
	}

	return alarms, nil
}

func (repo *AlarmRepo) Create(ctx context.Context, alarm *entity.Alarm) error {
	const query = `
INSERT INTO alarms (user_id, alarm_name, time)
VALUES ($1, $2, $3)`
	_, err := repo.db.ExecContext(ctx, query,
		alarm.UserID, alarm.AlarmName, alarm.Time,
	)
	if err != nil {
		return wrapErr("Create", err)
	}
	return nil
}

// Update writes the name and fire time. ID and user_id are immutable
// through this path.
func (repo *AlarmRepo) Update(ctx context.Context, alarm *entity.Alarm) error {
	const query = `
UPDATE alarms SET
    alarm_name = $1,
    time       = $2,
    updated_at = now()
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query,
		alarm.AlarmName, alarm.Time, alarm.ID,
	)
	if err != nil {
		return wrapErr("Update", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr("Update: RowsAffected", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *AlarmRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM alarms WHERE id = $1`
	_, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapErr("Delete", err)
	}
	return nil
}
