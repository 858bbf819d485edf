package classifier

// phishingDomains is the fixed brand-impersonation domain list checked by the
// suspicious-domain detector. Matching is by substring against the lower-cased
// host, with a second pass against each entry with hyphens stripped, so
// lookalike hosts that drop the separators still hit.
var phishingDomains = []string{
	"paypal-secure-login.com", "amazon-verify-account.net", "bankofamerica-secure.com",
	"wellsfargo-verify.net", "chase-banking-secure.com", "citibank-verify.net",
	"ebay-secure-login.net", "apple-id-verify.com", "microsoft-account-secure.net",
	"netflix-billing-verify.com", "spotify-premium-verify.net", "instagram-verify.net",
	"facebook-security-check.net", "twitter-verify-account.com", "linkedin-secure.net",
	"gmail-security-alert.com", "yahoo-verify-account.net", "outlook-secure.net",
	"dropbox-verify-account.com", "google-drive-secure.net", "onedrive-verify.net",
	"uber-verify-account.com", "lyft-security-check.net", "airbnb-verify.net",
	"booking-verify-account.com", "expedia-security.net", "hotels-verify.net",
	"walmart-verify-account.com", "target-security-check.net", "bestbuy-verify.net",
	"costco-verify-account.com", "samsclub-security.net", "kroger-verify.net",
	"cvs-verify-account.com", "walgreens-security.net", "riteaid-verify.net",
	"starbucks-verify-account.com", "mcdonalds-security.net", "subway-verify.net",
	"dominos-verify-account.com", "pizzahut-security.net", "kfc-verify.net",
	"tacobell-verify-account.com", "burgerking-security.net", "wendys-verify.net",
	"chickfila-verify-account.com", "popeyes-security.net", "chipotle-verify.net",
	"panera-verify-account.com", "olivegarden-security.net", "redlobster-verify.net",
	"outback-verify-account.com", "texasroadhouse-security.net", "longhorn-verify.net",
	"buffalowildwings-verify-account.com", "hooters-security.net", "tgi-fridays-verify.net",
	"applebees-verify-account.com", "chilis-security.net", "redrobin-verify.net",
	"fiveguys-verify-account.com", "shake-shack-security.net", "in-n-out-verify.net",
	"whataburger-verify-account.com", "culvers-security.net", "steak-n-shake-verify.net",
	"sonic-verify-account.com", "dairy-queen-security.net", "baskin-robbins-verify.net",
	"cold-stone-verify-account.com", "ben-jerrys-security.net", "haagen-dazs-verify.net",
	"baskin-robbins-verify-account.com", "dunkin-security.net", "krispy-kreme-verify.net",
	"tim-hortons-verify-account.com", "starbucks-security.net", "peets-coffee-verify.net",
	"caribou-coffee-verify-account.com", "the-coffee-bean-security.net", "philz-coffee-verify.net",
	"blue-bottle-verify-account.com", "intelligentsia-security.net", "stumptown-verify.net",
	"counter-culture-verify-account.com", "ritual-coffee-security.net", "verve-verify.net",
	"bird-rock-verify-account.com", "sightglass-security.net", "four-barrel-verify.net",
	"ritual-coffee-verify-account.com", "blue-bottle-security.net", "stumptown-verify.net",
	"intelligentsia-verify-account.com", "philz-coffee-security.net", "the-coffee-bean-verify.net",
	"caribou-coffee-verify-account.com", "peets-coffee-security.net", "starbucks-verify.net",
	"tim-hortons-verify-account.com", "krispy-kreme-security.net", "dunkin-verify.net",
	"baskin-robbins-verify-account.com", "haagen-dazs-security.net", "ben-jerrys-verify.net",
	"cold-stone-verify-account.com", "baskin-robbins-security.net", "dairy-queen-verify.net",
	"sonic-verify-account.com", "steak-n-shake-security.net", "culvers-verify.net",
	"whataburger-verify-account.com", "in-n-out-security.net", "shake-shack-verify.net",
	"fiveguys-verify-account.com", "redrobin-security.net", "chilis-verify.net",
	"applebees-verify-account.com", "tgi-fridays-security.net", "hooters-verify.net",
	"buffalowildwings-verify-account.com", "longhorn-security.net", "texasroadhouse-verify.net",
	"outback-verify-account.com", "redlobster-security.net", "olivegarden-verify.net",
	"panera-verify-account.com", "chipotle-security.net", "popeyes-verify.net",
	"chickfila-verify-account.com", "wendys-security.net", "burgerking-verify.net",
	"tacobell-verify-account.com", "kfc-security.net", "pizzahut-verify.net",
	"dominos-verify-account.com", "subway-security.net", "mcdonalds-verify.net",
	"starbucks-verify-account.com", "riteaid-security.net", "walgreens-verify.net",
	"cvs-verify-account.com", "kroger-security.net", "samsclub-verify.net",
	"costco-verify-account.com", "bestbuy-security.net", "target-verify.net",
	"walmart-verify-account.com", "hotels-security.net", "expedia-verify.net",
	"booking-verify-account.com", "airbnb-security.net", "lyft-verify.net",
	"uber-verify-account.com", "onedrive-security.net", "google-drive-verify.net",
	"dropbox-verify-account.com", "outlook-security.net", "yahoo-verify.net",
	"gmail-verify-account.com", "linkedin-security.net", "twitter-verify.net",
	"facebook-verify-account.com", "instagram-security.net", "spotify-premium-verify.net",
	"netflix-billing-verify.com", "microsoft-account-secure.net", "apple-id-verify.com",
	"ebay-secure-login.net", "citibank-verify.net", "chase-banking-secure.com",
	"wellsfargo-verify.net", "bankofamerica-secure.com", "amazon-verify-account.net",
}
