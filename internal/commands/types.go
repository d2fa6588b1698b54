package commands

import "encoding/json"

// Command names form the wire contract with the UI client. Changing a name
// breaks every invoke call shipped in the frontend.
const (
	CmdGreet            = "greet"
	CmdGetAppVersion    = "get_app_version"
	CmdGetPlatform      = "get_platform"
	CmdOpenFileDialog   = "open_file_dialog"
	CmdSaveFileDialog   = "save_file_dialog"
	CmdReadFile         = "read_file"
	CmdWriteFile        = "write_file"
	CmdShowNotification = "show_notification"
	CmdGetStoreValue    = "get_store_value"
	CmdSetStoreValue    = "set_store_value"
	CmdCheckForUpdates  = "check_for_updates"
)

// FileDialogResult is the open_file_dialog response.
type FileDialogResult struct {
	Canceled bool     `json:"canceled"`
	Paths    []string `json:"paths"`
}

// SaveDialogResult is the save_file_dialog response.
type SaveDialogResult struct {
	Canceled bool    `json:"canceled"`
	Path     *string `json:"path"`
}

type greetRequest struct {
	Name string `json:"name"`
}

type openFileDialogRequest struct {
	Title    string `json:"title,omitempty"`
	Multiple bool   `json:"multiple,omitempty"`
}

type saveFileDialogRequest struct {
	Title       string `json:"title,omitempty"`
	DefaultName string `json:"default_name,omitempty"`
}

type readFileRequest struct {
	Path string `json:"path"`
}

type writeFileRequest struct {
	Path     string `json:"path"`
	Contents []byte `json:"contents"`
}

type showNotificationRequest struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

type getStoreValueRequest struct {
	Key string `json:"key"`
}

type setStoreValueRequest struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}
