package checkout

// Version is the version of the checkout module. Binaries built without
// module information report it instead of a VCS tag.
const Version = "1.0.0"
