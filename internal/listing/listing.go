package listing

// View is the MotherDuck view the dashboard reads from.
const View = "test_cso_g.casa.vw_a_cgenova"

// Columns is the fixed projection queried from the view, in order.
var Columns = []string{
	"name",
	"url",
	"description",
	"number_of_rooms",
	"price_value_eur",
	"size_mq",
}

// RawListing is one row as it comes back from the view. The nominally
// numeric columns are kept untyped because the source does not guarantee
// they are numeric at all.
type RawListing struct {
	Name          string
	URL           string
	Description   string
	NumberOfRooms any
	PriceValueEUR any
	SizeMq        any
}

// Listing is one derived row. A nil pointer means the source value was
// absent or not coercible to a number.
type Listing struct {
	Name          string
	URL           string
	Description   string
	NumberOfRooms *float64
	PriceValueEUR *float64
	SizeMq        *float64
	PricePerMq    *float64
}

// Table is an ordered set of listings, insertion order matching the
// source query. Filtering builds a new table and never mutates one.
type Table []*Listing
