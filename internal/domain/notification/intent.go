package notification

import "fmt"

// Intent is a notification that a use case wants sent once its own work has
// committed. The audience is every user of each listed company.
type Intent struct {
	CompanyIDs []string
	Type       Type
	Title      string
	Content    string
}

func (i Intent) IsEmpty() bool {
	return len(i.CompanyIDs) == 0
}

// AccessRequested goes to the target brand's company.
func AccessRequested(targetCompanyID, requesterCompanyName, brandName string) Intent {
	return Intent{
		CompanyIDs: []string{targetCompanyID},
		Type:       TypeAccessRequest,
		Title:      "New Access Request",
		Content:    fmt.Sprintf("%s has requested access to your brand %q", requesterCompanyName, brandName),
	}
}

// AccessApproved goes to the requester company.
func AccessApproved(requesterCompanyID, brandName string) Intent {
	return Intent{
		CompanyIDs: []string{requesterCompanyID},
		Type:       TypeAccessApproved,
		Title:      "Access Approved",
		Content:    fmt.Sprintf("Your access request to %q has been approved", brandName),
	}
}

// AccessDenied goes to the requester company.
func AccessDenied(requesterCompanyID, brandName string) Intent {
	return Intent{
		CompanyIDs: []string{requesterCompanyID},
		Type:       TypeAccessDenied,
		Title:      "Access Denied",
		Content:    fmt.Sprintf("Your access request to %q has been denied", brandName),
	}
}

// NewAssets goes to every company holding an approved request on the brand.
func NewAssets(approvedCompanyIDs []string, brandName string, count int) Intent {
	content := fmt.Sprintf("%d new asset has been added to %q", count, brandName)
	if count > 1 {
		content = fmt.Sprintf("%d new assets have been added to %q", count, brandName)
	}
	return Intent{
		CompanyIDs: append([]string(nil), approvedCompanyIDs...),
		Type:       TypeNewAssets,
		Title:      "New Assets Available",
		Content:    content,
	}
}
