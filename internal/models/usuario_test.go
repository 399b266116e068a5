package models

import "testing"

func TestEffectiveAdminID(t *testing.T) {
	adminID := uint(7)

	admin := &Usuario{ID: 7, Role: RoleAdmin}
	if got := admin.EffectiveAdminID(); got == nil || *got != 7 {
		t.Fatalf("admin deve resolver para o próprio id, veio %v", got)
	}

	func1 := &Usuario{ID: 12, Role: RoleFuncionario, AdminID: &adminID}
	if got := func1.EffectiveAdminID(); got == nil || *got != 7 {
		t.Fatalf("funcionário deve resolver para o admin_id, veio %v", got)
	}

	orfao := &Usuario{ID: 13, Role: RoleFuncionario}
	if got := orfao.EffectiveAdminID(); got != nil {
		t.Fatalf("funcionário sem admin não tem identidade efetiva, veio %v", got)
	}
}
