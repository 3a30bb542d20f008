package stats

import (
	"database/sql"
	"time"
)

type StatsRepoSQL struct {
	db *sql.DB
}

func NewStatsRepoSQL(db *sql.DB) *StatsRepoSQL {
	return &StatsRepoSQL{db: db}
}

func (repo *StatsRepoSQL) RecordShare(userID int64, postID string, created time.Time) (int64, error) {
	query := "INSERT INTO shares (`user_id`, `post_id`, `created`) VALUES (?, ?, ?)"
	r, err := repo.db.Exec(query, userID, postID, created)
	if err != nil {
		return 0, err
	}

	lastID, err := r.LastInsertId()
	if err != nil {
		return 0, err
	}

	return lastID, nil
}

func (repo *StatsRepoSQL) TopSharers(limit int) ([]*LeaderboardEntry, error) {
	query := "SELECT u.`id`, u.`username`, COUNT(s.`id`) AS cnt FROM shares s " +
		"JOIN users u ON u.`id` = s.`user_id` " +
		"GROUP BY u.`id`, u.`username` ORDER BY cnt DESC, u.`id` LIMIT ?"

	rows, err := repo.db.Query(query, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	result := make([]*LeaderboardEntry, 0, limit)
	for rows.Next() {
		entry := &LeaderboardEntry{}
		err = rows.Scan(&entry.UserID, &entry.Username, &entry.Shares)
		if err != nil {
			return nil, err
		}

		result = append(result, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
