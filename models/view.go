package models

// View is a navigable front-end path.
type View string

const (
	ViewHome      View = "/"
	ViewLogin     View = "/login"
	ViewRegister  View = "/register"
	ViewAdmin     View = "/admin"
	ViewDashboard View = "/dashboard"
	ViewBook      View = "/book"
)

func (v View) String() string {
	return string(v)
}
