// Package commands exposes the closed set of operations the UI client may
// invoke. Each command decodes a typed request, calls one capability
// provider, and returns a typed result; failures surface as descriptive
// strings, never as a process fault.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"readmaster-go/internal/platform"
	"readmaster-go/internal/updatecheck"
)

// Dialogs presents native file pickers.
type Dialogs interface {
	PickFiles(title string, multiple bool) (paths []string, canceled bool, err error)
	PickSavePath(title, defaultName string) (path string, canceled bool, err error)
}

// Notifier shows desktop notifications.
type Notifier interface {
	Show(title, body string) error
}

// Store is the persistent key to JSON value settings store.
type Store interface {
	Get(key string) (json.RawMessage, error)
	Set(key string, value json.RawMessage) error
}

// UpdateChecker reports whether a newer release exists.
type UpdateChecker interface {
	CheckNow() *updatecheck.VersionInfo
}

// Service owns the capability providers and the command registry. It is
// bound to the UI runtime; the client addresses commands by name through
// Invoke.
type Service struct {
	logger   *zap.SugaredLogger
	version  string
	dialogs  Dialogs
	notifier Notifier
	store    Store
	updates  UpdateChecker

	registry *Registry
}

// NewService wires every command into a fresh registry. A registration
// collision is a startup error.
func NewService(logger *zap.SugaredLogger, version string, dialogs Dialogs, notifier Notifier, store Store, updates UpdateChecker) (*Service, error) {
	s := &Service{
		logger:   logger,
		version:  version,
		dialogs:  dialogs,
		notifier: notifier,
		store:    store,
		updates:  updates,
		registry: NewRegistry(logger),
	}

	for name, handler := range map[string]Handler{
		CmdGreet:            s.greet,
		CmdGetAppVersion:    s.getAppVersion,
		CmdGetPlatform:      s.getPlatform,
		CmdOpenFileDialog:   s.openFileDialog,
		CmdSaveFileDialog:   s.saveFileDialog,
		CmdReadFile:         s.readFile,
		CmdWriteFile:        s.writeFile,
		CmdShowNotification: s.showNotification,
		CmdGetStoreValue:    s.getStoreValue,
		CmdSetStoreValue:    s.setStoreValue,
		CmdCheckForUpdates:  s.checkForUpdates,
	} {
		if err := s.registry.Register(name, handler); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Invoke dispatches one named command with a raw JSON payload. Exported so
// the UI runtime binds it as the single entry point for the client.
func (s *Service) Invoke(ctx context.Context, name string, payload json.RawMessage) (json.RawMessage, error) {
	return s.registry.Invoke(ctx, name, payload)
}

// Registry returns the underlying command table.
func (s *Service) Registry() *Registry {
	return s.registry
}

func decode(name string, payload json.RawMessage, into interface{}) error {
	if len(payload) == 0 {
		return fmt.Errorf("missing %s arguments", name)
	}
	if err := json.Unmarshal(payload, into); err != nil {
		return fmt.Errorf("invalid %s arguments: %v", name, err)
	}
	return nil
}

func (s *Service) greet(_ context.Context, payload json.RawMessage) (interface{}, error) {
	var req greetRequest
	if err := decode(CmdGreet, payload, &req); err != nil {
		return nil, err
	}
	return fmt.Sprintf("Hello, %s! Welcome to Read Master.", req.Name), nil
}

func (s *Service) getAppVersion(_ context.Context, _ json.RawMessage) (interface{}, error) {
	return s.version, nil
}

func (s *Service) getPlatform(_ context.Context, _ json.RawMessage) (interface{}, error) {
	return platform.Name(), nil
}

func (s *Service) openFileDialog(_ context.Context, payload json.RawMessage) (interface{}, error) {
	var req openFileDialogRequest
	if len(payload) > 0 {
		if err := decode(CmdOpenFileDialog, payload, &req); err != nil {
			return nil, err
		}
	}

	s.logger.Infow("Opening file dialog", "title", req.Title)

	paths, canceled, err := s.dialogs.PickFiles(req.Title, req.Multiple)
	if err != nil {
		return nil, err
	}
	if paths == nil {
		paths = []string{}
	}

	return &FileDialogResult{Canceled: canceled, Paths: paths}, nil
}

func (s *Service) saveFileDialog(_ context.Context, payload json.RawMessage) (interface{}, error) {
	var req saveFileDialogRequest
	if len(payload) > 0 {
		if err := decode(CmdSaveFileDialog, payload, &req); err != nil {
			return nil, err
		}
	}

	s.logger.Infow("Opening save dialog", "title", req.Title)

	path, canceled, err := s.dialogs.PickSavePath(req.Title, req.DefaultName)
	if err != nil {
		return nil, err
	}

	result := &SaveDialogResult{Canceled: canceled}
	if !canceled {
		result.Path = &path
	}
	return result, nil
}

func (s *Service) readFile(_ context.Context, payload json.RawMessage) (interface{}, error) {
	var req readFileRequest
	if err := decode(CmdReadFile, payload, &req); err != nil {
		return nil, err
	}

	s.logger.Infow("Reading file", "path", req.Path)

	data, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %v", err)
	}
	return data, nil
}

func (s *Service) writeFile(_ context.Context, payload json.RawMessage) (interface{}, error) {
	var req writeFileRequest
	if err := decode(CmdWriteFile, payload, &req); err != nil {
		return nil, err
	}

	s.logger.Infow("Writing file", "path", req.Path, "bytes", len(req.Contents))

	if err := os.WriteFile(req.Path, req.Contents, 0644); err != nil {
		return nil, fmt.Errorf("failed to write file: %v", err)
	}
	return nil, nil
}

func (s *Service) showNotification(_ context.Context, payload json.RawMessage) (interface{}, error) {
	var req showNotificationRequest
	if err := decode(CmdShowNotification, payload, &req); err != nil {
		return nil, err
	}

	if err := s.notifier.Show(req.Title, req.Body); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *Service) getStoreValue(_ context.Context, payload json.RawMessage) (interface{}, error) {
	var req getStoreValueRequest
	if err := decode(CmdGetStoreValue, payload, &req); err != nil {
		return nil, err
	}

	s.logger.Debugw("Getting store value", "key", req.Key)

	value, err := s.store.Get(req.Key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		// Never-set keys are a normal absent result, not an error.
		return json.RawMessage("null"), nil
	}
	return value, nil
}

func (s *Service) setStoreValue(_ context.Context, payload json.RawMessage) (interface{}, error) {
	var req setStoreValueRequest
	if err := decode(CmdSetStoreValue, payload, &req); err != nil {
		return nil, err
	}

	s.logger.Debugw("Setting store value", "key", req.Key)

	if err := s.store.Set(req.Key, req.Value); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *Service) checkForUpdates(_ context.Context, _ json.RawMessage) (interface{}, error) {
	s.logger.Info("Checking for updates")

	info := s.updates.CheckNow()
	if info.CheckError != "" {
		return nil, fmt.Errorf("failed to check for updates: %s", info.CheckError)
	}
	return info.UpdateAvailable, nil
}
