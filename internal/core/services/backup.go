package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"todo-list-service/internal/core/domain"
	"todo-list-service/internal/core/ports/output"
)

const backupConcurrency = 4

// backupList is the document shape of one list inside a backup file.
type backupList struct {
	ListID       string  `json:"list_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	CreationDate string  `json:"creation_date"`
	Tasks        []any   `json:"tasks"`
}

type BackupService struct {
	lists   ports.TaskListRepository
	listSvc *TaskListService
	store   ports.BackupStore
	now     func() time.Time
}

func NewBackupService(lists ports.TaskListRepository, listSvc *TaskListService, store ports.BackupStore) *BackupService {
	return &BackupService{lists: lists, listSvc: listSvc, store: store, now: time.Now}
}

// Create snapshots every known list, with task data, into the backup store.
// Lists evicted from the cache while the snapshot runs are skipped.
func (s *BackupService) Create(ctx context.Context) (*domain.Backup, error) {
	ids, err := s.lists.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := make([]*backupList, len(ids))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(backupConcurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			expanded, err := s.listSvc.Get(gCtx, id, true)
			if errors.Is(err, domain.ErrTaskListNotFound) {
				log.WithField("list_id", id).Warn("list evicted before backup, skipping")
				return nil
			}
			if err != nil {
				return err
			}
			snapshot[i] = &backupList{
				ListID:       expanded.ListID,
				Name:         expanded.Name,
				Description:  expanded.Description,
				CreationDate: expanded.CreationDate,
				Tasks:        expanded.TaskEntries(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackupFailed, err)
	}

	lists := make([]*backupList, 0, len(snapshot))
	for _, l := range snapshot {
		if l != nil {
			lists = append(lists, l)
		}
	}

	payload, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: marshal: %w", domain.ErrBackupFailed, err)
	}

	name := fmt.Sprintf("backup_data_%s.json", s.now().Format("02-01-2006_150405"))
	location, err := s.store.Save(ctx, name, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackupFailed, err)
	}

	log.WithFields(log.Fields{"location": location, "lists": len(lists)}).Info("backup created")

	return &domain.Backup{Name: name, Location: location, Lists: len(lists)}, nil
}
