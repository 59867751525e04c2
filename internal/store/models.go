package store

type Script struct {
	ID          int64
	Ref         string
	CreatedAt   int64
	Summary     string
	Intent      string
	Script      string
	CheckStatus int
	CheckOutput string
}

type Warning struct {
	ID           int64
	ScriptID     int64
	PostingIndex int
	Code         string
	Message      string
}
