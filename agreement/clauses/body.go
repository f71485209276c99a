package clauses

// Body is the agreement text that follows the cover page, in document order.
var Body = []Block{
	{Kind: Paragraph, Text: "THIS MASTER SERVICES AGREEMENT (the “Agreement”) is made and effective from {{START_DATE}} by & between:"},
	{Kind: Paragraph, Text: "{{COMPANY_NAME}} is a company existing and operating in {{HEADQUARTERS}}, having Business License Number {{LICENSE_NUMBER}}, with its place of business {{BILLING_ADDRESS}}"},
	{Kind: Heading, Level: 1, Align: Center, Text: "And"},
	{Kind: Paragraph, Text: "Chervic Advisory Services Private Limited established under laws governing India, with its registered office at Unit No. 7, Sigma Soft Tech Park, Gamma Block, Ground Floor, Whitefield, Bangalore – 560066, Karnataka, India."},
	{Kind: Paragraph, Text: "Chervic Advisory Services Private Limited and {{COMPANY_NAME}} hereinafter referred to individually as a “Party” and collectively as the “Parties”."},
	{Kind: Paragraph, Text: "The Company and Service Provider are hereinafter individually referred to as a 'Party' and collectively as 'Parties'. Capitalized terms used but not defined herein shall have the meaning ascribed to such terms in the Agreement."},
	{Kind: Heading, Level: 2, Text: "Definitions"},
	{Kind: Paragraph, Text: "Under this Agreement:"},
	{Kind: Paragraph, Text: "1) “Affiliate” shall mean, with respect to any entity, any other entity that owns or controls, is owned or controlled by, or is under common ownership or control with such entity. The Parties acknowledge that Service Provider’s Affiliate may provide Services to Company. In such event, Company and the Service Provider’s Affiliate shall execute a separate SOW for Services. Company’s Affiliates may also obtain Services from Service Provider or Service Provider’s Affiliate under the terms of this Agreement by executing a separate SOW for Services. Such SOW shall be governed by terms and conditions as specified in Part B of this Agreement."},
	{Kind: Paragraph, Text: "2) “Resource” would mean any resource person employed by the Service Provider for the performance of its obligation under this Agreement."},
	{Kind: Paragraph, Text: "3) “Party” would mean either the Company or the Service Provider."},
	{Kind: Heading, Level: 2, Text: "1. Scope"},
	{Kind: Paragraph, Text: "The Company shall engage the Service Provider for the provisions of certain services or deliverables (the “Services”) by issuance of statements of work under the terms of this Agreement (the “SOW”). The SOWs issued under this Agreement shall contain all relevant information such as the commercials, delivery date, scope of services etc."},
	{Kind: Heading, Level: 2, Text: "2. Intellectual Property"},
	{Kind: Heading, Level: 3, Text: "2.1 The Service Provider will:"},
	{Kind: Paragraph, Text: "2.1.1 inform the Company of any matter which may come to its/Resource’s notice during the operation of this Agreement which may be of interest or importance or use to the Company; and"},
	{Kind: Paragraph, Text: "2.1.2 communicate to the Company any proposals or suggestions occurring to it during the operation of this Agreement which may be of service for the business of the Company."},
	{Kind: Paragraph, Text: "2.2 However, Service Provider shall retain all right, title and interest in and to the Service Provider’s pre-existing IP, including all right, title and interest in any modifications, customizations, updates, upgrades, enhancements, alterations, made thereto, whether at the request of Company or otherwise, and feedback related thereto."},
	{Kind: Paragraph, Text: "2.3 Any intellectual property (IP) that the Service Provider creates in the course of performing work under this Agreement, including the Statement of Work (SOW) — such as trademarks, copyrights, designs, or any other creative assets — shall remain the sole and exclusive property of the Service Provider. Such IP shall not be considered “work for hire” for the Company. The Company shall not acquire any ownership rights over any IP created by the Service Provider, whether during or after the term of this Agreement, unless otherwise expressly Agreed in writing."},
	{Kind: Heading, Level: 2, Text: "3. Confidential Information"},
	{Kind: Heading, Level: 3, Text: "3.1 Definitions"},
	{Kind: Paragraph, Text: "“Confidential Information” means any and all information of any kind whatsoever disclosed by one party (Disclosing Party) or any of its Representatives to the other party (Receiving Party) or any of its Representatives prior to, or after, the date of this Agreement in whatever form including, but not limited to, information or discussions related to any business opportunities and any other information which may reasonably be considered as confidential information in the normal course of business of the disclosing Party including but not limited to processes, strategies, data, know-how, trade secrets, designs, reports, test results, drawings, specifications, technical literature and other information or material whether in oral, written, graphic or electromagnetic form (and including without limitation any notes, information or analyses derived from such information however it is produced);"},
	{Kind: Paragraph, Text: "“Representatives” means the directors, officers, employees and consultants of the Receiving Party and its associated companies together with any professional advisors of the Receiving Party which it consults in relation to pursuing business opportunities."},
	{Kind: Heading, Level: 3, Text: "3.2 Obligations"},
	{Kind: Paragraph, Text: "Confidential Information disclosed by the Disclosing Party to the Receiving Party shall be treated as confidential and safeguarded by the Receiving Party in accordance with this Agreement for a period of 3 years from the date of this Agreement. The Receiving Party agrees with and undertakes to the Disclosing Party that it shall and shall procure that its Representatives shall for a period of 3 years from the date of this Agreement:"},
	{Kind: Paragraph, Text: "3.2.1 keep in strict confidence and in safe custody any Confidential Information disclosed to the Receiving Party by the Disclosing Party;"},
	{Kind: Paragraph, Text: "3.2.2 not use or exploit any Confidential Information other than in connection with pursuing business opportunities;"},
	{Kind: Paragraph, Text: "3.2.3 not copy or reproduce any or all of the Confidential Information except as is reasonably necessary in connection with the discussions on business opportunities;"},
	{Kind: Paragraph, Text: "3.2.4 promptly comply with any reasonable directions of the Disclosing Party which are given for the protection of the security of the Confidential Information;"},
	{Kind: Paragraph, Text: "3.2.5 except as may be required by any applicable law or regulation or the rules or requirements of any relevant stock exchange or relevant regulatory authority, not distribute, disclose or disseminate Confidential Information to anyone, except its Representatives who have a need to know such Confidential Information for the purpose of pursuing business opportunities; and"},
	{Kind: Paragraph, Text: "3.2.6 inform each such Representative of the restrictions as to confidentiality, use and disclosure of such Confidential Information contained in this Agreement and, to the extent that each such Representative is not already under an appropriate duty of confidentiality, impose upon each such Representative obligations of confidentiality at least equivalent to those set out in this Agreement."},
	{Kind: Heading, Level: 3, Text: "3.3 Public Statements"},
	{Kind: Paragraph, Text: "Subject to Article 3.4.5 below, each Party hereby undertakes that it shall not (without the prior consent in writing of the other party) release any press statement or make any other announcement to any third party or make any public statement regarding the existence or content of this Agreement or the discussions contemplated by this Agreement or the identity of the Parties to such discussions."},
	{Kind: Heading, Level: 3, Text: "3.4 Exceptions"},
	{Kind: Paragraph, Text: "The provisions of this Article shall not apply to Confidential Information which the Receiving Party can show to the Disclosing Party's reasonable satisfaction:"},
	{Kind: Paragraph, Text: "3.4.1 was known to the Receiving Party (without obligation to keep the same confidential) at the date of disclosure of the Confidential Information by the Disclosing Party;"},
	{Kind: Paragraph, Text: "3.4.2 is after the date of disclosure acquired by the Receiving Party in good faith from an independent third party who is not subject to any obligation of confidentiality in respect of such Confidential Information;"},
	{Kind: Paragraph, Text: "3.4.3 in its entirety was at the time of its disclosure in the public knowledge or has become public knowledge during the term of this Agreement otherwise than by reason of the Receiving Party's neglect or breach of the restrictions set out in this Agreement or any agreement between the parties;"},
	{Kind: Paragraph, Text: "3.4.4 is independently developed by the Receiving Party without access to any or all of the Confidential Information; or"},
	{Kind: Paragraph, Text: "3.4.5 is required by law, judicial action, the rules or regulations of a recognized stock exchange, government department or agency or other regulatory authority to be disclosed in which event the Receiving Party shall take all reasonable steps to consult and take into account the reasonable requirements of the Disclosing Party in relation to such disclosure."},
	{Kind: Paragraph, Text: "3.5 Upon the earlier of (i) the expiration or termination of this Agreement, or (ii) written request by the Disclosing Party, the Receiving Party shall, at the Disclosing Party’s option, promptly return or destroy all Confidential Information, including all copies thereof, in its possession or in the possession of its Representatives, whether in written, graphic, electronic, or any other form capable of return or destruction"},
	{Kind: Paragraph, Text: "Such return or destruction shall be completed within fifteen (15) days from the date of expiration, termination, or written request, as applicable. Upon completion, the Receiving Party shall, upon request, provide written certification confirming that all such Confidential Information has been returned or irretrievably destroyed."},
	{Kind: Heading, Level: 2, Text: "4. Warranties"},
	{Kind: Paragraph, Text: "Each Party represents and warrants to the other Party that:"},
	{Kind: Paragraph, Text: "4.1 it has the legal capacity and has taken all necessary corporate action required to empower and authorise it to enter into this Agreement;"},
	{Kind: Paragraph, Text: "4.2 this Agreement constitutes valid, binding obligations enforceable against it in accordance with the terms of this Agreement;"},
	{Kind: Paragraph, Text: "4.3 all information provided by it to the other Party in relation to the provision and receipt of the Services under this Agreement is true to the best of its knowledge, information and belief;"},
	{Kind: Paragraph, Text: "4.4 the execution of this Agreement and the performance of its obligations hereunder does not and shall not:"},
	{Kind: Paragraph, Text: "4.4.1 contravene any applicable law;"},
	{Kind: Paragraph, Text: "4.4.2 contravene any provision of the Party’s constitutional documents;"},
	{Kind: Paragraph, Text: "4.4.3 conflict with, or constitute a breach of any of the provisions of any other agreement, obligation, restriction or undertaking which is binding on the Party; and"},
	{Kind: Paragraph, Text: "4.4.4 no fact or circumstance exists that may impair its ability to comply with all of its obligations in terms of this Agreement;"},
	{Kind: Paragraph, Text: "4.5 it is not insolvent or unable to pay its debts and has not stopped paying its debts as they fall due."},
	{Kind: Paragraph, Text: "The warranties explicitly specified herein are in lieu of all other warranties of any kind, implied, statutory, or in any communication between them, including without limitation, the implied warranties of merchantability, non-infringement, title, and fitness for a particular purpose."},
	{Kind: Heading, Level: 2, Text: "5. Commencement and Termination of Agreement"},
	{Kind: Heading, Level: 3, Text: "5.1 Commencement"},
	{Kind: Paragraph, Text: "When executed by both Parties, this Agreement comes into force on the date stated at the head of this Agreement (Effective Date)."},
	{Kind: Heading, Level: 3, Text: "5.2 Termination"},
	{Kind: Paragraph, Text: "This Agreement shall remain in effect from the date hereof until the earliest to occur of the following:"},
	{Kind: Paragraph, Text: "5.2.1 Two (2) year from the (Effective Date) of this Agreement;"},
	{Kind: Paragraph, Text: "5.2.2 If either Party becomes insolvent or bankrupt, or assigns all or a substantial part of its business or assets for the benefit of its creditor(s), or seized by Receivership or Regulatory Authority, or permits the appointment of a receiver or a receiver and manager for its business or assets, or becomes subject to any judicial, administrative, quasi-Judicial or any other legal proceedings relating to the bankruptcy, insolvency, reorganization or the protection of creditors rights or otherwise ceases to conduct business in the normal course."},
	{Kind: Paragraph, Text: "5.2.3 Either Party may terminate this Agreement by providing the other Party with no less than thirty (30) days’ prior written notice of its intention to terminate. Such termination shall be effective only upon mutual written agreement of the Parties"},
	{Kind: Paragraph, Text: "5.2.4 If the other Party is in default or commits a material breach of this Agreement (including failure to pay an undisputed amount due hereunder), provide that the aggrieved Party serves a 30-day written notice (a 'Rectification Notice') on the other Party and that Party fails to remedy the breach within that period."},
	{Kind: Paragraph, Text: "5.2.5 Termination, completion or cancellation of the last remaining Proposal or Project that the Parties have agreed to pursue under this Agreement; or"},
	{Kind: Paragraph, Text: "5.2.6 Either party can terminate this agreement by serving a 90-day notice to other party."},
	{Kind: Heading, Level: 2, Text: "6. Non-Hire and Non-Solicitation"},
	{Kind: Paragraph, Text: "Neither Party shall actively solicit any of each other’s employee, affiliate, associate, client or independent contractor during the term of the Proposal and for a period of two years following its expiry or earlier termination."},
	{Kind: Heading, Level: 2, Text: "7. Limitation of Liability"},
	{Kind: Paragraph, Text: "In no event shall the Company be liable for any damages, including but not limited to loss of profits, cost of cover, or other incidental, consequential, or indirect damages, even if the Company has been advised of the possibility of such damages. Similarly, the Service Provider’s liability shall be limited to fees received under this Agreement and shall not include any indirect, incidental, or consequential damages. The Service Provider shall make reasonable efforts to deliver the services in alignment with the timelines, quality standards, and specifications set forth in the applicable Statement of Work (SOW). However, delays or deviations caused by events beyond the Service Provider’s reasonable control (e.g., force majeure events, delays in client dependencies, etc.) shall not constitute a breach of contract and shall not be subject to penalties or termination"},
	{Kind: Paragraph, Text: "Penalties for Non-Performance: In the event of a delay or failure in service delivery that is within the Service Provider’s control and is not remedied within ten (10) business days after written notice from the Company, the Service Provider shall be liable to pay a penalty of 0.5% of the total project value per week of delay, subject to a maximum cumulative penalty of 5% of the total project value"},
	{Kind: Heading, Level: 2, Text: "8. Indemnity"},
	{Kind: Paragraph, Text: "The Service Provider should indemnify and hold harmless the Company against any claims, damages, losses, or expenses arising from their negligence, misconduct, or breach of the Agreement."},
	{Kind: Paragraph, Text: "Likewise, the Company shall indemnify and hold harmless the Service Provider (Chervic Advisory Services), its officers, employees, and affiliates from and against any claims, damages, losses, or expenses (including reasonable legal fees) arising out of or resulting from the Company’s (WMC’s) negligence, willful misconduct, or breach of this Agreement."},
	{Kind: Heading, Level: 2, Text: "9. Security"},
	{Kind: Paragraph, Text: "The Service Provider shall make reasonable efforts to comply with the security-related policies and procedures of the Company’s clients, provided that such policies and procedures are communicated to the Service Provider in writing and in advance. In cases where the client does not have a defined security policy, the Service Provider agrees to follow the Company’s relevant security protocols, to the extent such protocols are reasonable, applicable, and have been clearly communicated in writing prior to the commencement of services."},
	{Kind: Paragraph, Text: "The Service Provider shall not be held responsible for non-compliance with any security policy that was not disclosed in writing or that imposes unreasonable or commercially impractical requirements. Any additional compliance obligations outside the scope of this Agreement shall be subject to mutual agreement and may require an amendment to the terms, including potential adjustments in timelines, scope, or fees"},
	{Kind: Heading, Level: 2, Text: "10. Force Majeure"},
	{Kind: Heading, Level: 3, Text: "10.1 General"},
	{Kind: Paragraph, Text: "Neither Party will be liable for any delay in performing or for failing to perform their respective obligations to the extent that any such specific delay or failure is caused, directly or indirectly, by an event beyond the reasonable control of the either Party, as the case may be, including fire, flood, earthquake, pandemic, elements of nature, acts of war, terrorism, riots, civil disorders, rebellions or revolutions, change in government policies, strikes, lockouts or labour difficulties, such default or delay, collectively, a “Force Majeure Event”."},
	{Kind: Heading, Level: 3, Text: "10.2 Notice and Suspension"},
	{Kind: Paragraph, Text: "If, as a result of a Force Majeure Event, it becomes impossible or impractical for any Party to carry out its obligations hereunder in whole or in part, then such obligations shall be suspended to the extent necessary by such Force Majeure Event during its continuance and during such time such Party will not be considered in default or contractual breach provided that the affected Party delivers to the non-affected Party as force majeure Notice."},
	{Kind: Paragraph, Text: "10.2.1 The Party affected by such Force Majeure Event (the “Affected Party”) shall give prompt written notice to the other Party (the “Non-Affected Party”) of the nature and probable duration of such Force Majeure Event, the extent of its effects on Affected Party’s performance hereunder, and the steps being taken by the Affected Party to address and remove the Force Majeure Event as soon as reasonably practicable following the onset of the Force Majeure Event (the “Force Majeure Notice”). If the Force Majeure Notice is not delivered within 5 (five) Business Days of the initial occurrence of the Force Majeure Event, then the Force Majeure Event will not be deemed to have occurred until the date on which the Non-Affected Party receives the Force Majeure Notice."},
	{Kind: Paragraph, Text: "10.2.2 The provision of “Force Majeure” aforesaid shall not be construed as relieving or waiver to either Party from its obligation under this contract to the other Party to the extent of the performed as well as reasonable performable part."},
	{Kind: Paragraph, Text: "10.2.3 In the event that a Force Majeure Event persists for a period exceeding 30 days, the Non – Affected Party may terminate this Agreement and any SOW issued hereunder forthwith with prior notice to the Affected Party."},
	{Kind: Paragraph, Text: "10.2.4 Notwithstanding anything stated in this Agreement, a Force Majeure Event shall not affect the liability of the Company to make payments to the Service Provider for Services that have already been rendered by the Service Provider."},
	{Kind: Heading, Level: 2, Text: "11. Independent Service Provider"},
	{Kind: Paragraph, Text: "Service Provider will remain as an independent Service Provider in its relationship with Company. Nothing in this Agreement shall be deemed to have created a partnership, or joint venture or a contract of employment between Company and Service Provider."},
	{Kind: Heading, Level: 2, Text: "12. Assignment"},
	{Kind: Paragraph, Text: "The Parties shall not assign, sub-license, mortgage, lien, charge, encumber or otherwise dispose of or transfer this Agreement or any of its rights or obligations under this Agreement without the prior written consent of the other. If either party assigns this Agreement to any third parties, such party shall remain the primary obligor and shall be jointly or severally liable for the performance of its obligations under this Agreement."},
	{Kind: Heading, Level: 2, Text: "13. No Waiver"},
	{Kind: Paragraph, Text: "Failure or omission by either Party at any time to enforce or require strict or timely compliance with any provision of this Agreement will not affect or impair that provision, or the right of either Party to avail itself of the remedies it may have in respect of any breach of a provision, in any way. However, nothing agreed aforesaid will prevail over the governing laws."},
	{Kind: Heading, Level: 2, Text: "14. Severability"},
	{Kind: Paragraph, Text: "Any provision of this Agreement that is or becomes illegal, void or unenforceable will be ineffective to the extent only of such illegality, voidness or unenforceability and will not invalidate the remaining provisions."},
	{Kind: Heading, Level: 2, Text: "15. Variation"},
	{Kind: Paragraph, Text: "This Agreement may not be changed or modified in any way after it has been signed except in writing signed by or on behalf of all the Parties."},
	{Kind: Heading, Level: 2, Text: "16. Governing Law and Dispute Resolution"},
	{Kind: Paragraph, Text: "16.1 This Agreement shall be governed by, subject to and construed in accordance with the laws of India."},
	{Kind: Paragraph, Text: "16.2 Both parties recognise that occasion may arise when one of the parties may have cause for concern relating to the way in which the other party is meeting its obligations under the terms of this Agreement."},
	{Kind: Paragraph, Text: "16.3 The parties shall each be under a general obligation to use all reasonable endeavours to negotiate in good faith and to settle amicably any dispute of whatever nature arising in connection with this Agreement."},
	{Kind: Paragraph, Text: "16.4 If a party considers that a dispute exists it shall notify the other party of the dispute in writing."},
	{Kind: Paragraph, Text: "16.5 If after (30) calendar days from the date of raising a dispute notice, any party considers that, despite the good faith efforts of the parties, the dispute is not capable of being settled, the aggrieved party may refer the dispute to the competent court in India. The Indian courts, to the exclusion of all other courts, shall have the jurisdiction to finally settle such dispute."},
	{Kind: Heading, Level: 2, Text: "17. Authority"},
	{Kind: Paragraph, Text: "Each party hereto represents and warrants that the person executing this Agreement on its behalf has express authority to do so, and in so doing, binds the parties hereto."},
	{Kind: Heading, Level: 2, Text: "18. Enforcement"},
	{Kind: Paragraph, Text: "This Agreement is enforceable by the original parties to it and by their successors in title and permitted assignees."},
	{Kind: Heading, Level: 2, Text: "19. Amendment and Extension"},
	{Kind: Paragraph, Text: "This Agreement may be amended, and the Term of this Agreement may be extended prior to its expiry only by an instrument in writing signed by duly authorised representative/s of each of the Parties."},
	{Kind: Heading, Level: 2, Text: "20. Survival"},
	{Kind: Paragraph, Text: "The termination or expiry of this Agreement shall not affect the obligations of each Party with respect to the provisions as set forth in Articles 3 and 6."},
	{Kind: Heading, Level: 2, Text: "21. Notices"},
	{Kind: Paragraph, Text: "All notices hereunder shall be given in writing by hand delivery, courier service, or email at the addresses set forth below:"},
	{Kind: Heading, Level: 3, Text: "If to {{COMPANY_NAME}}"},
	{Kind: Paragraph, Text: "{{BILLING_CONTACT_NAME}}\n{{CONTACT_DESIGNATION}}\n{{COMPANY_NAME}}\n{{BILLING_ADDRESS}}\n{{CONTACT_NUMBER}}\nE-mail:{{BILLING_EMAIL}}"},
	{Kind: Heading, Level: 3, Text: "If to CHERVIC ADVISORY SERVICES PRIVATE LIMITED"},
	{Kind: Paragraph, Text: "Mr. Vasudevan\nDirector\nChervic Advisory Services Private Limited\nUnit No.7 Sigma Soft Tech Park,\nGamma Block, Ground Floor,\nWhitefield, Bangalore – 560066,\nKarnataka E-mail: accounts@chervic.in"},
	{Kind: Heading, Level: 2, Text: "22. Entire Agreement and Modification"},
	{Kind: Paragraph, Text: "22.1 This Agreement contains all terms, conditions and provisions hereof and the entire understandings and all representations of understandings and discussions of the Parties relating thereto. This Agreement supersedes and replaces any and all prior agreements and understandings between {{COMPANY_NAME}} and CHERVIC ADVISORY SERVICES PRIVATE LIMITED."},
	{Kind: Paragraph, Text: "22.2 All terms and conditions included in this Agreement and its Schedule shall apply to any Project covered under this Agreement, unless mutually modified pursuant to the terms of a Project-Related Appendix."},
	{Kind: Heading, Level: 2, Text: "IN WITNESS WHEREOF"},
	{Kind: Paragraph, Text: "The Parties have caused this Agreement to be signed by their duly authorised representatives and effective the date written first above."},
}
