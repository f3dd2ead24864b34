package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2/model"
)

// Subjects are user roles, not user ids: every MASTER holds the same grants.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

func newModel() (model.Model, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}
	return m, nil
}
