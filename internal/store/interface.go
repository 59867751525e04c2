package store

type Repository interface {
	// Script Operations
	CreateScriptWithWarnings(script Script, warnings []Warning) (int64, error)
	GetScriptByID(id int64) (*Script, error)
	GetScriptByRef(ref string) (*Script, error)
	GetAllScripts(limit int) ([]*Script, error)
	UpdateCheckStatus(id int64, status int, output string) error
	DeleteScript(id int64) error

	// Warning Operations
	GetWarningsByScript(scriptID int64) ([]*Warning, error)

	ExecTx(fn func(Repository) error) error
	Close() error
}
