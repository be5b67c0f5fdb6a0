package grants

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/doodlesbykumbi/lockable-resources/pkg/permission"
)

// Object is the casbin object every capability check is made against.
const Object = "lockable-resources"

// DefaultModel is an RBAC model over (subject, object, capability).
const DefaultModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Casbin derives grants by asking an enforcer, once per capability,
// whether Subject may perform it on Object.
type Casbin struct {
	Enforcer *casbin.Enforcer
	Subject  string
}

// NewCasbin loads a model and policy from files.
func NewCasbin(modelPath, policyPath, subject string) (*Casbin, error) {
	e, err := casbin.NewEnforcer(modelPath, policyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	return &Casbin{Enforcer: e, Subject: subject}, nil
}

// NewCasbinFromModel builds an enforcer with no adapter around modelText.
// An empty modelText means DefaultModel. Policies are added by the caller.
func NewCasbinFromModel(modelText, subject string) (*Casbin, error) {
	if modelText == "" {
		modelText = DefaultModel
	}
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	return &Casbin{Enforcer: e, Subject: subject}, nil
}

func (c *Casbin) Grants(ctx context.Context) (permission.Grants, error) {
	out := make(permission.Grants, len(permission.CapabilityValues()))
	for _, capability := range permission.CapabilityValues() {
		ok, err := c.Enforcer.Enforce(c.Subject, Object, capability.String())
		if err != nil {
			return nil, fmt.Errorf("failed to enforce %s: %w", capability, err)
		}
		out[capability.String()] = ok
	}
	slog.DebugContext(ctx, "casbin grants", "subject", c.Subject, "grants", out)
	return out, nil
}
