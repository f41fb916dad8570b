package detectors

// Registry returns all detectors in scan order: the expensive kinds run
// first so partial results surface the biggest waste before the scan
// finishes.
func Registry() []Detector {
	return []Detector{
		ddosPlans,
		appGateways,
		vnetGateways,
		sqlElasticPools,
		appServicePlans,
		natGateways,
		loadBalancers,
		disks,
		publicIPs,
		trafficManagers,
		frontDoorWAFs,
		privateEndpoints,
		stoppedVMs,
		nics,
		nsgs,
		routeTables,
		availabilitySets,
		ipGroups,
		privateDNSZones,
		resourceGroups,
		apiConnections,
		certificates,
	}
}

// ByKind returns the detector registered under the given kind key,
// false when no detector matches.
func ByKind(kind string) (Detector, bool) {
	for _, d := range Registry() {
		if d.Kind == kind {
			return d, true
		}
	}
	return Detector{}, false
}
