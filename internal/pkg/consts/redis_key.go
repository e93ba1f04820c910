package consts

const (
	PostViewKey       = "post:view:"
	PostViewDirtyKey  = "post:view:dirty"
	AuthCheckedKey    = "auth:checked:"
	ReportGenLockKey  = "report:gen:lock:"
	PlayerSnapshotKey = "player:snapshot:"
)
