package queries

import "time"

// nowFunc stamps updated_at on writes; swappable in tests.
var nowFunc = time.Now
