package icons

// AnimatedPresets are the built-in animated icons offered under the
// "animated" prefix.
var AnimatedPresets = []Icon{
	{
		Name:    "animated:spinner",
		Content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><circle cx="12" cy="12" r="10" stroke="currentColor" stroke-width="3" fill="none" opacity="0.25"/><path d="M12 2a10 10 0 0 1 10 10" stroke="currentColor" stroke-width="3" fill="none" stroke-linecap="round"><animateTransform attributeName="transform" type="rotate" from="0 12 12" to="360 12 12" dur="1s" repeatCount="indefinite"/></path></svg>`,
	},
	{
		Name:    "animated:dots",
		Content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><circle cx="4" cy="12" r="3" fill="currentColor"><animate attributeName="opacity" dur="1s" values="1;0.2;1" repeatCount="indefinite" begin="0"/></circle><circle cx="12" cy="12" r="3" fill="currentColor"><animate attributeName="opacity" dur="1s" values="1;0.2;1" repeatCount="indefinite" begin="0.2s"/></circle><circle cx="20" cy="12" r="3" fill="currentColor"><animate attributeName="opacity" dur="1s" values="1;0.2;1" repeatCount="indefinite" begin="0.4s"/></circle></svg>`,
	},
	{
		Name:    "animated:pulse",
		Content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><circle cx="12" cy="12" r="8" fill="currentColor"><animate attributeName="r" dur="1.5s" values="8;12;8" repeatCount="indefinite"/><animate attributeName="opacity" dur="1.5s" values="1;0.5;1" repeatCount="indefinite"/></circle></svg>`,
	},
	{
		Name:    "animated:bars",
		Content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><rect x="2" y="6" width="4" height="12" rx="1" fill="currentColor"><animate attributeName="height" dur="1s" values="12;20;12" repeatCount="indefinite" begin="0"/><animate attributeName="y" dur="1s" values="6;2;6" repeatCount="indefinite" begin="0"/></rect><rect x="10" y="6" width="4" height="12" rx="1" fill="currentColor"><animate attributeName="height" dur="1s" values="12;20;12" repeatCount="indefinite" begin="0.2s"/><animate attributeName="y" dur="1s" values="6;2;6" repeatCount="indefinite" begin="0.2s"/></rect><rect x="18" y="6" width="4" height="12" rx="1" fill="currentColor"><animate attributeName="height" dur="1s" values="12;20;12" repeatCount="indefinite" begin="0.4s"/><animate attributeName="y" dur="1s" values="6;2;6" repeatCount="indefinite" begin="0.4s"/></rect></svg>`,
	},
	{
		Name:    "animated:ring",
		Content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><circle cx="12" cy="12" r="10" stroke="currentColor" stroke-width="2" fill="none"><animate attributeName="stroke-dasharray" dur="1.5s" values="0 63;63 63" repeatCount="indefinite"/><animateTransform attributeName="transform" type="rotate" from="0 12 12" to="360 12 12" dur="1s" repeatCount="indefinite"/></circle></svg>`,
	},
	{
		Name:    "animated:bounce",
		Content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><circle cx="12" cy="12" r="6" fill="currentColor"><animate attributeName="cy" dur="0.6s" values="12;6;12" repeatCount="indefinite" calcMode="spline" keySplines="0.5 0 0.5 1; 0.5 0 0.5 1"/></circle></svg>`,
	},
	{
		Name:    "animated:wave",
		Content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><rect x="1" y="8" width="3" height="8" rx="1" fill="currentColor"><animate attributeName="height" dur="1s" values="8;16;8" repeatCount="indefinite" begin="0"/><animate attributeName="y" dur="1s" values="8;4;8" repeatCount="indefinite" begin="0"/></rect><rect x="6" y="8" width="3" height="8" rx="1" fill="currentColor"><animate attributeName="height" dur="1s" values="8;16;8" repeatCount="indefinite" begin="0.1s"/><animate attributeName="y" dur="1s" values="8;4;8" repeatCount="indefinite" begin="0.1s"/></rect><rect x="11" y="8" width="3" height="8" rx="1" fill="currentColor"><animate attributeName="height" dur="1s" values="8;16;8" repeatCount="indefinite" begin="0.2s"/><animate attributeName="y" dur="1s" values="8;4;8" repeatCount="indefinite" begin="0.2s"/></rect><rect x="16" y="8" width="3" height="8" rx="1" fill="currentColor"><animate attributeName="height" dur="1s" values="8;16;8" repeatCount="indefinite" begin="0.3s"/><animate attributeName="y" dur="1s" values="8;4;8" repeatCount="indefinite" begin="0.3s"/></rect><rect x="21" y="8" width="3" height="8" rx="1" fill="currentColor"><animate attributeName="height" dur="1s" values="8;16;8" repeatCount="indefinite" begin="0.4s"/><animate attributeName="y" dur="1s" values="8;4;8" repeatCount="indefinite" begin="0.4s"/></rect></svg>`,
	},
	{
		Name:    "animated:heart",
		Content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><path d="M12 21.35l-1.45-1.32C5.4 15.36 2 12.28 2 8.5 2 5.42 4.42 3 7.5 3c1.74 0 3.41.81 4.5 2.09C13.09 3.81 14.76 3 16.5 3 19.58 3 22 5.42 22 8.5c0 3.78-3.4 6.86-8.55 11.54L12 21.35z" fill="currentColor"><animate attributeName="transform" type="scale" values="1;1.2;1" dur="0.8s" repeatCount="indefinite" additive="sum"/><animateTransform attributeName="transform" type="translate" values="0 0;0 0;0 0" dur="0.8s" repeatCount="indefinite"/></path></svg>`,
	},
	{
		Name:    "animated:loading-circle",
		Content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><circle cx="12" cy="12" r="2" fill="currentColor"><animate attributeName="r" dur="1.5s" values="2;6;2" repeatCount="indefinite"/><animate attributeName="opacity" dur="1.5s" values="1;0;1" repeatCount="indefinite"/></circle><circle cx="12" cy="12" r="6" fill="none" stroke="currentColor" stroke-width="1"><animate attributeName="r" dur="1.5s" values="6;10;6" repeatCount="indefinite"/><animate attributeName="opacity" dur="1.5s" values="0.5;0;0.5" repeatCount="indefinite"/></circle></svg>`,
	},
	{
		Name:    "animated:sync",
		Content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><path d="M12 4V1L8 5l4 4V6c3.31 0 6 2.69 6 6 0 1.01-.25 1.97-.7 2.8l1.46 1.46C19.54 15.03 20 13.57 20 12c0-4.42-3.58-8-8-8zm0 14c-3.31 0-6-2.69-6-6 0-1.01.25-1.97.7-2.8L5.24 7.74C4.46 8.97 4 10.43 4 12c0 4.42 3.58 8 8 8v3l4-4-4-4v3z" fill="currentColor"><animateTransform attributeName="transform" type="rotate" from="0 12 12" to="360 12 12" dur="1.5s" repeatCount="indefinite"/></path></svg>`,
	},
	{
		Name:    "animated:typing",
		Content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><circle cx="6" cy="12" r="2" fill="currentColor"><animate attributeName="cy" dur="0.6s" values="12;8;12" repeatCount="indefinite" begin="0"/></circle><circle cx="12" cy="12" r="2" fill="currentColor"><animate attributeName="cy" dur="0.6s" values="12;8;12" repeatCount="indefinite" begin="0.15s"/></circle><circle cx="18" cy="12" r="2" fill="currentColor"><animate attributeName="cy" dur="0.6s" values="12;8;12" repeatCount="indefinite" begin="0.3s"/></circle></svg>`,
	},
	{
		Name:    "animated:clock",
		Content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><circle cx="12" cy="12" r="10" stroke="currentColor" stroke-width="2" fill="none"/><line x1="12" y1="12" x2="12" y2="7" stroke="currentColor" stroke-width="2" stroke-linecap="round"><animateTransform attributeName="transform" type="rotate" from="0 12 12" to="360 12 12" dur="12s" repeatCount="indefinite"/></line><line x1="12" y1="12" x2="16" y2="12" stroke="currentColor" stroke-width="2" stroke-linecap="round"><animateTransform attributeName="transform" type="rotate" from="0 12 12" to="360 12 12" dur="1s" repeatCount="indefinite"/></line></svg>`,
	},
}
