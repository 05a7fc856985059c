package storage

import "github.com/Veraticus/limit-gauge/internal/service"

var _ service.DesignStore = (*SQLiteStorage)(nil)
