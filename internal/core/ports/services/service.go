package services

// ServiceContainer holds all service facades, wired once at startup and
// handed to the route registration.
type ServiceContainer struct {
	Freight     FreightSvcFacade
	Expense     ExpenseSvcFacade
	Goal        GoalSvcFacade
	Closure     ClosureSvcFacade
	OFreteja    OFretejaSvcFacade
	Settings    SettingsSvcFacade
	User        UserSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
