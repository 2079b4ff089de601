// Package domain contains the core business entities for branded social
// post generation: company profiles, brand personas, generation requests,
// and the post proposals produced by the pipeline. Domain objects carry
// their own validation and have no dependencies on transport or providers.
package domain
