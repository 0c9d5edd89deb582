package menus

import (
	"restriction-app/internal/domain/mismatch"
)

// CompareWithPage checks an item's authored visibility against the
// restriction policy of the page it links to. Custom links have
// nothing to compare against and come back Neutral.
func (i MenuItem) CompareWithPage() mismatch.Result {
	if i.PageID == nil || i.Page == nil {
		return mismatch.Neutral
	}
	return mismatch.Compare(i.ItemPolicy(), i.Page.RestrictionPolicy())
}
