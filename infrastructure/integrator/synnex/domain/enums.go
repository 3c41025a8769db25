package synnexdomain

type DropShipFlag string

const (
	DropShipYes DropShipFlag = "Y"
	DropShipNo  DropShipFlag = "N"
)

type SpecialPriceType string

const (
	SpecialPriceVendorPromotion   SpecialPriceType = "VendorPromotion"
	SpecialPriceFederalGovernment SpecialPriceType = "FederalGovernment"
	SpecialPriceStateGovernment   SpecialPriceType = "StateGovernment"
	SpecialPriceEducation         SpecialPriceType = "Education"
)

type ShipMethodCode string

// Códigos de transportadora nos EUA
const (
	USShipAAACooper                     ShipMethodCode = "AAAC"
	USShipABFCustShip                   ShipMethodCode = "ABFC"
	USShipABFTimekeeper                 ShipMethodCode = "ABFT"
	USShipAITWhitegloveTVB2C            ShipMethodCode = "AIP"
	USShipAITThresholdB2CTV             ShipMethodCode = "AIPT"
	USShipAITDeferredEconomy            ShipMethodCode = "AIT"
	USShipAITOneDay                     ShipMethodCode = "AIT1"
	USShipAITTwoDay                     ShipMethodCode = "AIT2"
	USShipAITGuaranteed3Day             ShipMethodCode = "AIT3"
	USShipAsocGlobalOneDay              ShipMethodCode = "ASA1"
	USShipAsocGlobalTwoDay              ShipMethodCode = "ASA2"
	USShipAsocGlobalDefer               ShipMethodCode = "ASAF"
	USShipATLCourier                    ShipMethodCode = "ATLC"
	USShipAverittExpressTL              ShipMethodCode = "AVTL"
	USShipBAXSchenkerOneDayGlobal       ShipMethodCode = "BAX1"
	USShipBAXSchenkerTwoDayGlobal       ShipMethodCode = "BAX2"
	USShipCircleDelivery                ShipMethodCode = "CD"
	USShipCHRobinson                    ShipMethodCode = "CHR"
	USShipCeladonTrucking               ShipMethodCode = "CLDN"
	USShipColumnLogistics               ShipMethodCode = "CLG"
	USShipCorTransOneDay                ShipMethodCode = "COO1"
	USShipCorTransTwoDay                ShipMethodCode = "COO2"
	USShipCorTransThreeDay              ShipMethodCode = "COO3"
	USShipCorTransDeferred              ShipMethodCode = "COOG"
	USShipCustomerPickUp                ShipMethodCode = "CPU"
	USShipCSXTrucking                   ShipMethodCode = "CSX"
	USShipLocalDelivery                 ShipMethodCode = "DE"
	USShipDynamexLocalDelyPallets       ShipMethodCode = "DETR"
	USShipDynamexLocalDelyVans          ShipMethodCode = "DEVN"
	USShipDHL                           ShipMethodCode = "DH"
	USShipDHLInternational              ShipMethodCode = "DHI"
	USShipDHLTwoDay                     ShipMethodCode = "DHL2"
	USShipDotlineTransportation         ShipMethodCode = "DOTL"
	USShipDawesTransportation           ShipMethodCode = "DW"
	USShipCEVANextDay                   ShipMethodCode = "E1"
	USShipCEVASecondDay                 ShipMethodCode = "E2"
	USShipCEVAThreeFiveDay              ShipMethodCode = "E3"
	USShipElectronicDelivery            ShipMethodCode = "EDEL"
	USShipExpeditorsInternational       ShipMethodCode = "EXDO"
	USShipExpeditorsSpot                ShipMethodCode = "EXPS"
	USShipEagleUSAInternational         ShipMethodCode = "EUSA"
	USShipEdgeLogistics                 ShipMethodCode = "ELOB"
	USShipFedExTwoDay                   ShipMethodCode = "F2"
	USShipFedExTwoDayFreight            ShipMethodCode = "F2F"
	USShipFedExInternational            ShipMethodCode = "FI"
	USShipFedExFridaySatDel             ShipMethodCode = "FFS"
	USShipFedExGround                   ShipMethodCode = "FG"
	USShipFedExGroundCanada             ShipMethodCode = "FGC"
	USShipFedExHomeDelivery             ShipMethodCode = "FHD"
	USShipFedExMultiWeight              ShipMethodCode = "FMWT"
	USShipFedExStandardOvernight        ShipMethodCode = "FO"
	USShipFedExStandardOvernightFreight ShipMethodCode = "FOF"
	USShipFedExPriorityOvernight        ShipMethodCode = "FP"
	USShipFedExPriorityOvernightFreight ShipMethodCode = "FPF"
	USShipFedExHvyPriorityIntl          ShipMethodCode = "FPFI"
	USShipFedExPriorityInternational    ShipMethodCode = "FPI"
	USShipFedExIntlPriorityCWT          ShipMethodCode = "FPIC"
	USShipFedExIntlPriority             ShipMethodCode = "FPIN"
	USShipFedExSaturdayDelivery         ShipMethodCode = "FS"
	USShipForwardedWillCall             ShipMethodCode = "FWC"
	USShipFedExExpressSaver             ShipMethodCode = "FX"
	USShipFedExExpressSaverFreight      ShipMethodCode = "FXF"
	USShipFedExFreightEconomyIntl       ShipMethodCode = "FXFI"
	USShipFedExIntlEconomyCWT           ShipMethodCode = "FXIC"
	USShipFedExIntlEconomy              ShipMethodCode = "FXIN"
	USShipFedExLTLEconomy               ShipMethodCode = "FXLE"
	USShipFedExLTLPriority              ShipMethodCode = "FXLP"
	USShipFedExNationalLTLSpot          ShipMethodCode = "FXNL"
	USShipHoldShip                      ShipMethodCode = "HS"
	USShipHubGroup                      ShipMethodCode = "HUBG"
	USShipHorizonAlliance               ShipMethodCode = "HZA"
	USShipJBHuntTruckload               ShipMethodCode = "JBHT"
	USShipJetDelService                 ShipMethodCode = "JET"
	USShipJITTransportation             ShipMethodCode = "JIT"
	USShipJITLTGround                   ShipMethodCode = "JITG"
	USShipKLSAirExpress                 ShipMethodCode = "KAE"
)

// Códigos de transportadora no Canadá
const (
	CAShipCEVALogistics              ShipMethodCode = "CEV"
	CAShipCEVATHService              ShipMethodCode = "CEVT"
	CAShipCEVAWHService              ShipMethodCode = "CEVW"
	CAShipCanadaPostCorporation      ShipMethodCode = "CPC"
	CAShipCanadaPostExpeditedParcel  ShipMethodCode = "CPCE"
	CAShipCanadaPostPriorityNextAM   ShipMethodCode = "CPCP"
	CAShipCanadaPostRegularParcel    ShipMethodCode = "CPCR"
	CAShipCanadaPostXpresspost       ShipMethodCode = "CPCX"
	CAShipDayAndRossCalgary          ShipMethodCode = "DARC"
	CAShipDayAndRossGuelph           ShipMethodCode = "DARG"
	CAShipDayAndRossHalifax          ShipMethodCode = "DARH"
	CAShipDayAndRossVancouver        ShipMethodCode = "DARV"
	CAShipDayAndRossSmallOrders      ShipMethodCode = "DARX"
	CAShipDropShipVendor             ShipMethodCode = "DSV"
	CAShipElectronicDelivery         ShipMethodCode = "EDEL"
	CAShipFedExExpress               ShipMethodCode = "FDXH"
	CAShipForwardedWillCall          ShipMethodCode = "FWC"
	CAShipKHDispatch                 ShipMethodCode = "KNH"
	CAShipKHSSpecial                 ShipMethodCode = "KNHS"
	CAShipOnwardExpressRush          ShipMethodCode = "OXR"
	CAShipPurolatorExpress1030am     ShipMethodCode = "P10X"
	CAShipPurolatorExpress900am      ShipMethodCode = "P9X"
	CAShipPurolatorSaturday          ShipMethodCode = "PSA"
	CAShipPurolatorExpressAir        ShipMethodCode = "PUA"
	CAShipPurolatorGround            ShipMethodCode = "PUG"
	CAShipPurolatorExpressGround     ShipMethodCode = "PUX"
	CAShipQuickRunOvernight          ShipMethodCode = "QR2"
	CAShipRoutesDisplayDist1Pallet   ShipMethodCode = "ROD1"
	CAShipRoutesDisplayDist2Pallet   ShipMethodCode = "ROD2"
	CAShipRoutesDisplayDist3Pallet   ShipMethodCode = "ROD3"
	CAShipRoutesDistributionQuarters ShipMethodCode = "RODQ"
	CAShipRoutesLTL                  ShipMethodCode = "ROU"
	CAShipRoutesInbound              ShipMethodCode = "ROUI"
	CAShipRoutesQuartersGuelph       ShipMethodCode = "ROUQ"
	CAShipRoutesDisplaySpecial       ShipMethodCode = "ROUS"
	CAShipRoutesTruckLoad            ShipMethodCode = "ROUT"
	CAShipSchenker40FTHighCubeCont   ShipMethodCode = "S40H"
	CAShipSchenkerAirfreight         ShipMethodCode = "SAIR"
	CAShipSchenker20Container        ShipMethodCode = "SC20"
	CAShipSchenker40Container        ShipMethodCode = "SC40"
	CAShipSchenker45Container        ShipMethodCode = "SC45"
	CAShipSchenker40HighCubeContnr   ShipMethodCode = "SC4H"
	CAShipDynamexExpSameDayLocal     ShipMethodCode = "SDL"
	CAShipDynamexExpSameDayDirect    ShipMethodCode = "SDS"
	CAShipSamedayTruck               ShipMethodCode = "SDT"
	CAShipSchenkerFullTruckload      ShipMethodCode = "SFTL"
	CAShipSchenkerLessThanContainer  ShipMethodCode = "SLCL"
	CAShipSchenkerLessThanTruckload  ShipMethodCode = "SLTL"
	CAShipStraitConsolidateStx       ShipMethodCode = "ST2"
	CAShipStraitExpress              ShipMethodCode = "STX"
	CAShipUPSStandard                ShipMethodCode = "UPG"
	CAShipUPSGroundForCollect        ShipMethodCode = "UPGC"
	CAShipUPSExpressSaver            ShipMethodCode = "UPSS"
	CAShipUPSExpressSaver2           ShipMethodCode = "UPX"
	CAShipCustomerPickUp             ShipMethodCode = "WC"
	CAShipPickUpInEtobicoke          ShipMethodCode = "WCET"
	CAShipPickUpGuelph               ShipMethodCode = "WCGU"
	CAShipCustomerPickUp2            ShipMethodCode = "WCMI"
	CAShipLogitecDisplayShipment     ShipMethodCode = "WCRO"
	CAShipWarehouseSelect            ShipMethodCode = "WHS"
)

// DefaultShipMethod é usado quando o pedido não informa transportadora.
const DefaultShipMethod = USShipFedExExpressSaver

type Warehouse string

const (
	USWarehouseMiamiFL           Warehouse = "16"
	USWarehouseFremontCA         Warehouse = "3"
	USWarehouseFortWorthTX       Warehouse = "503"
	USWarehouseGlendaleHeightsIL Warehouse = "6"
	USWarehouseOliveBranchMS     Warehouse = "7"
	USWarehouseKeasbyNJ          Warehouse = "8"
	USWarehouseBeavertonOR       Warehouse = "10"
	USWarehouseNorcrossGA        Warehouse = "4"
	USWarehouseOntarioCA         Warehouse = "12"
	USWarehouseColumbusOH        Warehouse = "14"
	USWarehouseOliveBranchMSNew  Warehouse = "79"
	USWarehouseKeasbyNJNew       Warehouse = "89"
	USWarehouseOntarioCANew      Warehouse = "129"
	USWarehouseColumbusOHNew     Warehouse = "149"

	CAWarehouseUSJoint    Warehouse = "US"
	CAWarehouseHalifaxNS  Warehouse = "26"
	CAWarehouseGuelphON   Warehouse = "29"
	CAWarehouseCalgaryAB  Warehouse = "31"
	CAWarehouseRichmondBC Warehouse = "81"
)

var warehousesByCountry = map[CountryCode][]Warehouse{
	CountryUS: {
		USWarehouseMiamiFL, USWarehouseFremontCA, USWarehouseFortWorthTX, USWarehouseGlendaleHeightsIL,
		USWarehouseOliveBranchMS, USWarehouseKeasbyNJ, USWarehouseBeavertonOR, USWarehouseNorcrossGA,
		USWarehouseOntarioCA, USWarehouseColumbusOH, USWarehouseOliveBranchMSNew, USWarehouseKeasbyNJNew,
		USWarehouseOntarioCANew, USWarehouseColumbusOHNew,
	},
	CountryCA: {
		CAWarehouseUSJoint, CAWarehouseHalifaxNS, CAWarehouseGuelphON, CAWarehouseCalgaryAB, CAWarehouseRichmondBC,
	},
}

// IsKnownWarehouse indica se o código consta na tabela de armazéns publicada para o país.
func IsKnownWarehouse(country CountryCode, code string) bool {
	for _, w := range warehousesByCountry[country] {
		if string(w) == code {
			return true
		}
	}
	return false
}
