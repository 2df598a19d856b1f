package governance

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Call is what a dispatched action receives: the opaque payload bytes the
// signers authorized and the value that travels with the call. The engine
// never interprets either, it only binds them into the signed digest.
type Call struct {
	Payload []byte
	Value   uint64
}

// Action is a target that can process an authorized call. This could
// represent "update a governor", or any operation an embedding application
// wants to put under threshold control. An action holds only the
// capabilities it was constructed with, never ambient access to the engine
// state.
type Action interface {
	Execute(ctx Context, call *Call) (*ExecResult, error)
}

// ActionFunc turns a plain function into an Action.
type ActionFunc func(ctx Context, call *Call) (*ExecResult, error)

var _ Action = ActionFunc(nil)

// Execute calls the wrapped function.
func (f ActionFunc) Execute(ctx Context, call *Call) (*ExecResult, error) {
	return f(ctx, call)
}

// Registry is an interface to register your action,
// the setup side of a Router
type Registry interface {
	Handle(path string, a Action)
}

// pathPattern is a regular expression that all registered destination paths
// must match.
var pathPattern = regexp.MustCompile(`^[a-z0-9]{3,8}/[a-z0-9_]{3,20}$`)

// Router directs each authorized call to the action registered under its
// destination path.
type Router struct {
	routes map[string]Action
}

var _ Registry = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]Action),
	}
}

// Handle adds a new action for the given path. It panics if an action for
// that path was already registered or if the path is invalid. Registration
// happens during setup, so a mistake here is a programmer error.
func (r *Router) Handle(path string, a Action) {
	if !pathPattern.MatchString(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("double registration of an action for path %q", path))
	}
	r.routes[path] = a
}

// Action returns the action registered for this path, or nil when the path
// is unknown. The caller decides how an unknown destination surfaces.
func (r *Router) Action(path string) Action {
	return r.routes[path]
}

// Options are the engine setup options.
// Each component can look up its key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}
