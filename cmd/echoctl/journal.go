package main

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"echo-journal/internal/client/echoapi"
	"echo-journal/internal/config"
	"echo-journal/internal/domain/diaries"
	"echo-journal/internal/domain/events"
	"echo-journal/internal/export"
	"echo-journal/internal/platform/factory"
	"echo-journal/internal/platform/logger"
	"echo-journal/internal/storage"
)

// journal es lo que los comandos necesitan, venga de disco o del server.
type journal interface {
	Events(ctx context.Context) ([]events.Event, error)
	TodayEvents(ctx context.Context) ([]events.Event, error)
	EventsByDate(ctx context.Context, date string) ([]events.Event, error)
	AddEvent(ctx context.Context, in events.CreateInput) (events.Event, error)
	UpdateEvent(ctx context.Context, id string, in events.UpdateInput) (events.Event, bool, error)
	GetEvent(ctx context.Context, id string) (events.Event, bool, error)
	DeleteEvent(ctx context.Context, id string) (bool, error)
	ClearTodayEvents(ctx context.Context) error
	Export(ctx context.Context, date, format string) ([]byte, error)
	Close(ctx context.Context) error
}

type remoteJournal struct {
	*echoapi.Client
}

func (remoteJournal) Close(context.Context) error { return nil }

// localJournal abre el mismo storage que usa el server y opera sobre events.Consumer.
type localJournal struct {
	consumer events.Consumer
	events   *events.Store
	diaries  *diaries.Store
	svc      *storage.Service
	loc      *time.Location
}

func openLocal(ctx context.Context, cfg *config.Config, log logger.Logger) (*localJournal, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	kvs, err := factory.NewKVStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	svc := storage.NewService(kvs, log)

	evs := events.NewStore(svc, log,
		events.WithLocation(loc),
		events.WithPersistTimeout(cfg.PersistTimeout),
	)
	dis := diaries.NewStore(svc, log, loc, cfg.PersistTimeout)
	evs.Init(ctx)
	dis.Init(ctx)

	return &localJournal{consumer: evs, events: evs, diaries: dis, svc: svc, loc: loc}, nil
}

func (j *localJournal) Events(context.Context) ([]events.Event, error) {
	return j.consumer.Events(), nil
}

func (j *localJournal) TodayEvents(context.Context) ([]events.Event, error) {
	return j.consumer.TodayEvents(), nil
}

func (j *localJournal) EventsByDate(_ context.Context, date string) ([]events.Event, error) {
	return j.consumer.GetEventsByDate(date), nil
}

func (j *localJournal) AddEvent(_ context.Context, in events.CreateInput) (events.Event, error) {
	return j.consumer.AddEvent(in), nil
}

func (j *localJournal) UpdateEvent(_ context.Context, id string, in events.UpdateInput) (events.Event, bool, error) {
	e, ok := j.consumer.UpdateEvent(id, in)
	return e, ok, nil
}

func (j *localJournal) GetEvent(_ context.Context, id string) (events.Event, bool, error) {
	e, ok := j.consumer.GetEvent(id)
	return e, ok, nil
}

func (j *localJournal) DeleteEvent(_ context.Context, id string) (bool, error) {
	return j.consumer.DeleteEvent(id), nil
}

func (j *localJournal) ClearTodayEvents(context.Context) error {
	j.consumer.ClearTodayEvents()
	return nil
}

func (j *localJournal) Export(_ context.Context, date, format string) ([]byte, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	day := export.Day{Date: date}
	if date == "" {
		day.Date = events.DateOf(time.Now(), j.loc)
		day.Events = j.consumer.TodayEvents()
	} else {
		day.Events = j.consumer.GetEventsByDate(date)
	}
	day.Diaries = j.diaries.GetDiariesByDate(day.Date)

	var buf bytes.Buffer
	if err := export.Write(&buf, f, day); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close vacía lo pendiente y cierra el kv. Sin esto el proceso puede salir antes de escribir.
func (j *localJournal) Close(ctx context.Context) error {
	var firstErr error
	if err := j.events.Close(ctx); err != nil {
		firstErr = fmt.Errorf("flush events: %w", err)
	}
	if err := j.diaries.Close(ctx); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("flush diaries: %w", err)
	}
	if err := j.svc.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close storage: %w", err)
	}
	return firstErr
}
