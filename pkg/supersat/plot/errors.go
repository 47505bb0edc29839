package plot

import "fmt"

// NotFoundError indicates an operation on a name that is registered neither
// as a line nor as a scatter.
type NotFoundError struct {
	Diagram string
	Name    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("line or scatter %q not found on diagram %q", e.Name, e.Diagram)
}
