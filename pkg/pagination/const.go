package pagination

// PageDefaultSize is the default page size if not specified
const PageDefaultSize = 20

// PageMaxSize is the maximum allowed page size
const PageMaxSize = 100

// DefaultSiblingCount is the number of pages shown on each side of the current page
// when the caller does not ask for a specific window.
const DefaultSiblingCount = 1

// MaxSiblingCount is the widest window accepted from external callers.
const MaxSiblingCount = 10
