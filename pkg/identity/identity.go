package identity

// Gender is the viewer's declared gender attribute. It gates access to
// the mens/womens boards and nothing else.
type Gender string

const (
	Unspecified Gender = ""
	Male        Gender = "male"
	Female      Gender = "female"
)

// Viewer identifies the session's single active user. It is supplied
// once by the login or registration screen and immutable afterwards.
type Viewer struct {
	Name   string
	Gender Gender
	Avatar string
}
