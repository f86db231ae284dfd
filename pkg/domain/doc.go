// Package domain contains the entities shared by the profile fetcher, the
// login flow and its collaborators: credentials, transactions, profiles and
// the FetchResult produced by one fetch-and-parse operation. The types carry
// no infrastructure concerns.
package domain
