package notification

type Type string

const (
	TypeAccessRequest  Type = "ACCESS_REQUEST"
	TypeAccessApproved Type = "ACCESS_APPROVED"
	TypeAccessDenied   Type = "ACCESS_DENIED"
	TypeNewAssets      Type = "NEW_ASSETS"
)

var validTypes = map[Type]bool{
	TypeAccessRequest:  true,
	TypeAccessApproved: true,
	TypeAccessDenied:   true,
	TypeNewAssets:      true,
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return validTypes[t]
}
