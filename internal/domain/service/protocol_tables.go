package service

import "chain-persona-engine/internal/domain/entity"

// defaultProtocolTables returns the static per-chain contract tables. Keys
// are lowercased addresses; the tables are built once at construction and
// never written afterwards.
func defaultProtocolTables() map[string]map[string]entity.ProtocolEntry {
	return map[string]map[string]entity.ProtocolEntry{
		"ethereum": {
			"0x7a250d5630b4cf539739df2c5dacb4c659f2488d": {Name: "Uniswap V2 Router", Category: entity.CategoryDeFi},
			"0x68b3465833fb72a70ecdf485e0e4c7bd8665fc45": {Name: "Uniswap V3 Router", Category: entity.CategoryDeFi},
			"0xe592427a0aece92de3edee1f18e0157c05861564": {Name: "Uniswap V3 Router 2", Category: entity.CategoryDeFi},
			"0x00000000219ab540356cbb839cbe05303d7705fa": {Name: "Ethereum 2.0 Deposit", Category: entity.CategoryStaking},
			"0x7be8076f4ea4a4ad08075c2508e481d6c946d12b": {Name: "OpenSea Registry", Category: entity.CategoryNFT},
			"0x00000000006c3852cbef3e08e8df289169ede581": {Name: "OpenSea Seaport", Category: entity.CategoryNFT},
			"0x7f268357a8c2552623316e2562d90e642bb538e5": {Name: "Rarible Exchange", Category: entity.CategoryNFT},
			"0x06012c8cf97bead5deae237070f9587f8e7a266d": {Name: "CryptoKitties", Category: entity.CategoryGaming},
			"0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb": {Name: "CryptoPunks", Category: entity.CategoryNFT},
			"0xc0da01a04c3f3e0be433606045bb7017a7323e38": {Name: "Compound Governance", Category: entity.CategoryGovernance},
			"0x9f8f72aa9304c8b593d555f12ef6589cc3a579a2": {Name: "Maker Token", Category: entity.CategoryGovernance},
			"0x5d3a536e4d6dbd6114cc1ead35777bab948e3643": {Name: "Compound cDAI", Category: entity.CategoryDeFi},
			"0x4ddc2d193948926d02f9b1fe9e1daa0718270ed5": {Name: "Compound cETH", Category: entity.CategoryDeFi},
			"0x7d2768de32b0b80b7a3454c06bdac94a69ddc7a9": {Name: "Aave Lending Pool", Category: entity.CategoryDeFi},
			"0x1f573d6fb3f13d689ff844b4ce37794d79a7ff1c": {Name: "Bancor Network", Category: entity.CategoryDeFi},
			"0xd9e1ce17f2641f24ae83637ab66a2cca9c378b9f": {Name: "SushiSwap Router", Category: entity.CategoryDeFi},
			"0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2": {Name: "WETH", Category: entity.CategoryDeFi},
			"0xa0b86a33e6441e8c8c7014b37c88df5c5cc8c8c8": {Name: "Curve Finance", Category: entity.CategoryDeFi},
			"0x1111111254fb6c44bac0bed2854e76f90643097d": {Name: "1inch Router", Category: entity.CategoryDeFi},
			"0xdef1c0ded9bec7f1a1670819833240f027b25eff": {Name: "0x Protocol", Category: entity.CategoryDeFi},
		},
		"polygon": {
			"0xa5e0829caced8ffdd4de3c43696c57f7d7a678ff": {Name: "QuickSwap Router", Category: entity.CategoryDeFi},
			"0x1b02da8cb0d097eb8d57a175b88c7d8b47997506": {Name: "SushiSwap Router", Category: entity.CategoryDeFi},
			"0x8f3cf7ad23cd3cadbd9735aff958023239c6a063": {Name: "Aave Polygon", Category: entity.CategoryDeFi},
			"0x2791bca1f2de4661ed88a30c99a7a9449aa84174": {Name: "USDC Polygon", Category: entity.CategoryDeFi},
			"0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270": {Name: "WMATIC", Category: entity.CategoryDeFi},
			"0x60ae616a2155ee3d9a68541ba4544862310933d4": {Name: "OpenSea Polygon", Category: entity.CategoryNFT},
			"0xc2132d05d31c914a87c6611c10748aeb04b58e8f": {Name: "USDT Polygon", Category: entity.CategoryDeFi},
			"0x831753dd7087cac61ab5644b308642cc1c33dc13": {Name: "QuickSwap Factory", Category: entity.CategoryDeFi},
			"0x1111111254fb6c44bac0bed2854e76f90643097d": {Name: "1inch Router", Category: entity.CategoryDeFi},
			"0xf491e7b69e4244ad4002bc14e878a34207e38c29": {Name: "SpookySwap Router", Category: entity.CategoryDeFi},
			"0x5757371414417b8c6caad45baef941abc7d3ab32": {Name: "Curve Polygon", Category: entity.CategoryDeFi},
			"0x445fe580ef8d70ff569ab36e80c647af338db351": {Name: "Balancer Polygon", Category: entity.CategoryDeFi},
		},
		"bsc": {
			"0x10ed43c718714eb63d5aa57b78b54704e256024e": {Name: "PancakeSwap V2 Router", Category: entity.CategoryDeFi},
			"0x13f4ea83d0bd40e75c8222255bc855a974568dd4": {Name: "PancakeSwap V3 Router", Category: entity.CategoryDeFi},
			"0x58f876857a02d6762e0101bb5c46a8c1ed44dc16": {Name: "Venus Protocol", Category: entity.CategoryDeFi},
			"0x55d398326f99059ff775485246999027b3197955": {Name: "USDT BSC", Category: entity.CategoryDeFi},
			"0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c": {Name: "WBNB", Category: entity.CategoryDeFi},
			"0x8ac76a51cc950d9822d68b83fe1ad97b32cd580d": {Name: "USDC BSC", Category: entity.CategoryDeFi},
			"0x1af3f329e8be154074d8769d1ffa4ee058b1dbc3": {Name: "DAI BSC", Category: entity.CategoryDeFi},
			"0x1111111254fb6c44bac0bed2854e76f90643097d": {Name: "1inch Router", Category: entity.CategoryDeFi},
			"0xd99d1c33f9fc3444f8101754abc46c52416550d1": {Name: "PancakeSwap V1 Router", Category: entity.CategoryDeFi},
			"0x05ff2b0db69458a0750badebc4f9e13add608c7f": {Name: "PancakeSwap Factory", Category: entity.CategoryDeFi},
			"0x1b02da8cb0d097eb8d57a175b88c7d8b47997506": {Name: "SushiSwap BSC", Category: entity.CategoryDeFi},
			"0x16b9a82891338f9ba80e2d6970fdda79d1eb0dae": {Name: "Biswap Router", Category: entity.CategoryDeFi},
			"0x3a6d8ca21d1cf76f653a67577fa0d27453350dd8": {Name: "BakerySwap Router", Category: entity.CategoryDeFi},
			"0xcf0febd3f17cef5b47b0cd257acf6025c5bff3b7": {Name: "ApeSwap Router", Category: entity.CategoryDeFi},
		},
	}
}
