package domain

// Column headers expected in the campaign report.
const (
	ColumnDate   = "Data"
	ColumnClicks = "Cliques"
	ColumnSpend  = "Gasto (R$)"
	ColumnCTR    = "CTR (%)"
	ColumnCPC    = "CPC (R$)"
)

// CampaignColumnAliases lists the accepted headers for the campaign
// identifier, in priority order. The first one present wins.
var CampaignColumnAliases = []string{"Campanha", "Campaign", "campaign_name"}

// ResolveCampaignColumn returns the first alias found in headers.
func ResolveCampaignColumn(headers []string) (string, bool) {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}
	for _, alias := range CampaignColumnAliases {
		if _, ok := present[alias]; ok {
			return alias, true
		}
	}
	return "", false
}
