package pagination

// PageDefaultSize is the page size used when a request does not set one.
const PageDefaultSize = 50

// PageMaxSize caps the page size a request may ask for.
const PageMaxSize = 500
