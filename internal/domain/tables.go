package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&SysOpr{},
	&SysOprLog{},
	// Storefront
	&Product{},
	&Order{},
	&TeamMember{},
	&Feature{},
	&Feedback{},
}
